package service

import (
	"context"
	"time"

	"blog_service/internal/models"
	"blog_service/internal/repository"
)

// Authorization covers account creation and token handling.
type Authorization interface {
	SignUp(ctx context.Context, email, password, name string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Posts exposes blog post operations. Mutations are scoped to the
// authenticated author; reads are public.
type Posts interface {
	Create(ctx context.Context, authorID, title, content string) (string, error)
	Update(ctx context.Context, authorID, postID, title, content string) (models.PostView, error)
	GetByID(ctx context.Context, postID string) (models.PostView, error)
	ListAll(ctx context.Context) ([]models.PostView, error)
}

// AuthConfig carries the token signing material. The signing key comes from
// environment configuration, never from source.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Posts
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Posts:         NewPostService(repos.Posts),
	}
}
