package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog_service/internal/logger"
	"blog_service/internal/service"
)

// Machine-readable error codes, additive to the "error" message field.
const (
	codeValidation   = "validation"
	codeConflict     = "conflict"
	codeUnauthorized = "unauthorized"
	codeNotFound     = "not_found"
	codeInternal     = "internal"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The engine is constructed once at startup and holds no per-request state.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		h.registerUserRoutes(api)
		h.registerBlogRoutes(api)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user")
	{
		user.POST("/signup", h.signUp)
		user.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerBlogRoutes(api *gin.RouterGroup) {
	blog := api.Group("/blog")
	{
		// Reads are public, with or without a token.
		blog.GET("/bulk", h.listPosts)
		blog.GET("/:id", h.getPost)

		// Mutations require a verified bearer token.
		authed := blog.Group("", h.userIdentity)
		{
			authed.POST("", h.createPost)
			authed.PUT("", h.updatePost)
		}
	}
}

// errorJSON writes the uniform failure body: an "error" string plus a
// structured "code" clients can branch on.
func errorJSON(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"error": msg, "code": code})
}

// logAndJSONError logs the underlying error and responds with a safe,
// user-facing message.
func (h *Handler) logAndJSONError(c *gin.Context, status int, code, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	errorJSON(c, status, code, userMsg)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		errorJSON(c, http.StatusBadRequest, codeValidation, "invalid body: "+err.Error())
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
