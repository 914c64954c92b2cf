package service

import (
	"context"
	"errors"
	"strings"

	"blog_service/internal/models"
	"blog_service/internal/repository"
)

// Domain errors for post flows.
var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
	// Covers both "no such post" and "not the owner"; the repository
	// predicate makes the two indistinguishable on purpose.
	ErrPostNotFound = errors.New("post not found")
)

type PostService struct {
	posts repository.Posts
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts}
}

func validatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Create inserts a post owned by authorID and returns the new id.
func (s *PostService) Create(ctx context.Context, authorID, title, content string) (string, error) {
	if err := validatePostInput(title, content); err != nil {
		return "", err
	}
	p, err := s.posts.Create(ctx, authorID, title, content)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update mutates a post only when it belongs to authorID.
func (s *PostService) Update(ctx context.Context, authorID, postID, title, content string) (models.PostView, error) {
	if err := validatePostInput(title, content); err != nil {
		return models.PostView{}, err
	}
	p, err := s.posts.Update(ctx, authorID, postID, title, content)
	if err != nil {
		return models.PostView{}, err
	}
	if p == nil {
		return models.PostView{}, ErrPostNotFound
	}
	return toPostView(p), nil
}

// GetByID returns a single post with its author's public name. No
// ownership check; posts are readable by anyone.
func (s *PostService) GetByID(ctx context.Context, postID string) (models.PostView, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return models.PostView{}, err
	}
	if p == nil {
		return models.PostView{}, ErrPostNotFound
	}
	return toPostView(p), nil
}

// ListAll returns every post, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.PostView, len(posts))
	for i := range posts {
		views[i] = toPostView(&posts[i])
	}
	return views, nil
}

func toPostView(p *models.Post) models.PostView {
	return models.PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    models.PostAuthor{Name: p.Author.Name},
		CreatedAt: p.CreatedAt,
	}
}
