package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_service/internal/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Ensure implementation of Posts interface at compile time.
var _ Posts = (*PostRepository)(nil)

// Create inserts a post owned by authorID and returns it.
func (r *PostRepository) Create(ctx context.Context, authorID, title, content string) (*models.Post, error) {
	p := &models.Post{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("insert post for author %q: %w", authorID, err)
	}
	return p, nil
}

// Update mutates title/content of the post matching both postID and
// authorID. The combined predicate keeps non-owners from touching, or even
// discovering, other users' posts. Returns (nil, nil) when nothing matched.
func (r *PostRepository) Update(ctx context.Context, authorID, postID, title, content string) (*models.Post, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND author_id = ?", postID, authorID).
		Updates(map[string]interface{}{"title": title, "content": content})
	if res.Error != nil {
		return nil, fmt.Errorf("update post %q: %w", postID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, postID)
}

// GetByID fetches a post with its author preloaded. Returns (nil, nil) if
// not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	return &p, nil
}

// ListAll returns every post with authors preloaded, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
