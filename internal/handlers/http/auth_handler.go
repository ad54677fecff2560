package http

import (
	"net/http"

	"skateplan/internal/core/ports"
	"skateplan/internal/infrastructure/middleware"
	"skateplan/pkg/errors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// Login exchanges credentials for a backend session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("email and password are required"))
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Me returns the profile resolved by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.Error(errors.NewUnauthorizedError("authentication required"))
		return
	}
	c.JSON(http.StatusOK, user)
}
