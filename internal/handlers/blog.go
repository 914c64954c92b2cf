package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_service/internal/service"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	ID      string `json:"id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// @Summary      Create post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post"
// @Success      200   {object}  map[string]string  "id"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/blog [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	authorID := c.GetString(userIDKey)
	id, err := h.services.Posts.Create(c.Request.Context(), authorID, input.Title, input.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrEmptyContent) {
			errorJSON(c, http.StatusBadRequest, codeValidation, err.Error())
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, codeInternal, "failed to create post",
			"post_create_failed", err, "author", authorID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Update post
// @Description  Only the post's author can update it; anyone else gets a 404.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      updatePostRequest  true  "Post"
// @Success      200   {object}  models.PostView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/blog [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	var input updatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	authorID := c.GetString(userIDKey)
	post, err := h.services.Posts.Update(c.Request.Context(), authorID, input.ID, input.Title, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTitle), errors.Is(err, service.ErrEmptyContent):
			errorJSON(c, http.StatusBadRequest, codeValidation, err.Error())
		case errors.Is(err, service.ErrPostNotFound):
			errorJSON(c, http.StatusNotFound, codeNotFound, service.ErrPostNotFound.Error())
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, codeInternal, "failed to update post",
				"post_update_failed", err, "post", input.ID)
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary      Get post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  models.PostView
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/blog/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id := c.Param("id")
	post, err := h.services.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			errorJSON(c, http.StatusNotFound, codeNotFound, service.ErrPostNotFound.Error())
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, codeInternal, "failed to load post",
			"post_get_failed", err, "post", id)
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary      List posts
// @Description  Every post, newest first, readable without authentication.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   models.PostView
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/blog/bulk [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.ListAll(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, codeInternal, "failed to load posts",
			"post_list_failed", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
