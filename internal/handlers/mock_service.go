package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"blog_service/internal/models"
	"blog_service/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpErr   error
	signInToken string
	signInErr   error
	parseID     string
	parseErr    error

	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignUpName     string
	lastSignInEmail    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, email, password, name string) (string, error) {
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	m.lastSignUpName = name
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, password string) (string, error) {
	m.lastSignInEmail = email
	return m.signInToken, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPosts struct {
	createID   string
	createErr  error
	updateView models.PostView
	updateErr  error
	getView    models.PostView
	getErr     error
	listViews  []models.PostView
	listErr    error

	lastCreateAuthor string
	lastUpdateAuthor string
	lastUpdateID     string
}

func (m *mockPosts) Create(_ context.Context, authorID, title, content string) (string, error) {
	m.lastCreateAuthor = authorID
	return m.createID, m.createErr
}

func (m *mockPosts) Update(_ context.Context, authorID, postID, title, content string) (models.PostView, error) {
	m.lastUpdateAuthor = authorID
	m.lastUpdateID = postID
	return m.updateView, m.updateErr
}

func (m *mockPosts) GetByID(_ context.Context, postID string) (models.PostView, error) {
	return m.getView, m.getErr
}

func (m *mockPosts) ListAll(_ context.Context) ([]models.PostView, error) {
	return m.listViews, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
