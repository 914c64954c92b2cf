package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog_service/internal/models"
)

// mockPostRepo is a lightweight in-test mock for repository.Posts.
type mockPostRepo struct {
	CreateFn  func(authorID, title, content string) (*models.Post, error)
	UpdateFn  func(authorID, postID, title, content string) (*models.Post, error)
	GetByIDFn func(id string) (*models.Post, error)
	ListAllFn func() ([]models.Post, error)

	createCalls int
	updateCalls int
}

func (m *mockPostRepo) Create(_ context.Context, authorID, title, content string) (*models.Post, error) {
	m.createCalls++
	return m.CreateFn(authorID, title, content)
}

func (m *mockPostRepo) Update(_ context.Context, authorID, postID, title, content string) (*models.Post, error) {
	m.updateCalls++
	return m.UpdateFn(authorID, postID, title, content)
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	return m.GetByIDFn(id)
}

func (m *mockPostRepo) ListAll(_ context.Context) ([]models.Post, error) {
	return m.ListAllFn()
}

func TestPostService_Create_Success(t *testing.T) {
	mock := &mockPostRepo{
		CreateFn: func(authorID, title, content string) (*models.Post, error) {
			if authorID != "author-1" {
				t.Fatalf("expected author-1, got %q", authorID)
			}
			return &models.Post{ID: "post-1", Title: title, Content: content, AuthorID: authorID}, nil
		},
	}
	svc := NewPostService(mock)

	id, err := svc.Create(context.Background(), "author-1", "T", "C")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != "post-1" {
		t.Fatalf("expected id post-1, got %q", id)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	mock := &mockPostRepo{
		CreateFn: func(authorID, title, content string) (*models.Post, error) {
			t.Fatal("Create should not reach the repo on invalid input")
			return nil, nil
		},
	}
	svc := NewPostService(mock)

	if _, err := svc.Create(context.Background(), "a", "  ", "body"); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "a", "title", ""); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if mock.createCalls != 0 {
		t.Fatalf("expected no repo calls, got %d", mock.createCalls)
	}
}

func TestPostService_Update_OwnerMismatchIsNotFound(t *testing.T) {
	mock := &mockPostRepo{
		UpdateFn: func(authorID, postID, title, content string) (*models.Post, error) {
			// repo reports "no matching row" for both absent post and
			// wrong owner
			return nil, nil
		},
	}
	svc := NewPostService(mock)

	_, err := svc.Update(context.Background(), "intruder", "post-1", "T", "C")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Update_Success(t *testing.T) {
	mock := &mockPostRepo{
		UpdateFn: func(authorID, postID, title, content string) (*models.Post, error) {
			return &models.Post{
				ID:       postID,
				Title:    title,
				Content:  content,
				AuthorID: authorID,
				Author:   models.User{Name: "Alice"},
			}, nil
		},
	}
	svc := NewPostService(mock)

	view, err := svc.Update(context.Background(), "author-1", "post-1", "New", "Body")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.ID != "post-1" || view.Title != "New" || view.Content != "Body" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Author.Name != "Alice" {
		t.Fatalf("expected author name Alice, got %q", view.Author.Name)
	}
}

func TestPostService_GetByID_Missing(t *testing.T) {
	mock := &mockPostRepo{
		GetByIDFn: func(id string) (*models.Post, error) { return nil, nil },
	}
	svc := NewPostService(mock)

	_, err := svc.GetByID(context.Background(), "nope")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_ListAll_ProjectsAuthorsInOrder(t *testing.T) {
	now := time.Now()
	mock := &mockPostRepo{
		ListAllFn: func() ([]models.Post, error) {
			return []models.Post{
				{ID: "p2", Title: "second", Author: models.User{Name: "Bob"}, CreatedAt: now},
				{ID: "p1", Title: "first", Author: models.User{Name: "Alice"}, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := NewPostService(mock)

	views, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].ID != "p2" || views[1].ID != "p1" {
		t.Fatalf("repo order must be preserved: %+v", views)
	}
	if views[0].Author.Name != "Bob" || views[1].Author.Name != "Alice" {
		t.Fatalf("author projection wrong: %+v", views)
	}
}
