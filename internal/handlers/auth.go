package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_service/internal/service"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Anything that is not a validation failure collapses into one generic
// message, so signup responses don't reveal whether an email is taken.
const errSignUpGeneric = "error while signing up"

// @Summary      Sign up
// @Description  Creates an account and returns a signed token.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "jwt"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/user/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignUp(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordTooShort):
			errorJSON(c, http.StatusBadRequest, codeValidation, err.Error())
		default:
			// Duplicate email and store failures look identical from outside.
			h.logAndJSONError(c, http.StatusForbidden, codeConflict, errSignUpGeneric,
				"sign_up_failed", err, "email", input.Email)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt": token})
}

// @Summary      Sign in
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "jwt"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/user/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			errorJSON(c, http.StatusForbidden, codeUnauthorized, "Invalid email or password")
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, codeInternal, "error while signing in",
			"sign_in_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jwt": token})
}
