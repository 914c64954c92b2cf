package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_service/internal/models"
)

// ErrDuplicateEmail is returned by Users.Create when the email is already
// taken (unique index on users.email).
var ErrDuplicateEmail = errors.New("email already registered")

type Users interface {
	Create(ctx context.Context, email, passwordHash, name string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type Posts interface {
	Create(ctx context.Context, authorID, title, content string) (*models.Post, error)
	// Update applies title/content only to the post matching both id and
	// author. Returns (nil, nil) when no such row exists.
	Update(ctx context.Context, authorID, postID, title, content string) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
