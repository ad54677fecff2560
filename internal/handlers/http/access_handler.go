package http

import (
	"net/http"
	"strconv"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/internal/infrastructure/middleware"
	"skateplan/pkg/errors"
	"skateplan/pkg/validation"

	"github.com/gin-gonic/gin"
)

// AccessHandler serves permission sets to browser shells.
type AccessHandler struct {
	accessService ports.AccessService
}

func NewAccessHandler(accessService ports.AccessService) *AccessHandler {
	return &AccessHandler{
		accessService: accessService,
	}
}

// Lookup returns a handler that fetches entity :id of kind with the
// caller's token and derives the caller's permissions on it.
func (h *AccessHandler) Lookup(kind domain.EntityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err == nil {
			err = validation.ValidateEntityID(id)
		}
		if err != nil {
			c.Error(errors.NewInvalidInputError("entity id must be a positive integer"))
			return
		}

		user, ok := middleware.UserFrom(c)
		if !ok {
			c.Error(errors.NewUnauthorizedError("authentication required"))
			return
		}

		access, err := h.accessService.Lookup(c.Request.Context(), middleware.TokenFrom(c), user, kind, id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, access)
	}
}

// DeriveRequest carries both inputs of a pure evaluation. Either may be
// omitted, which yields the restrictive default set.
type DeriveRequest struct {
	User   *domain.User   `json:"user"`
	Entity *domain.Entity `json:"entity"`
}

// Derive evaluates a (user, entity) pair without calling the backend.
func (h *AccessHandler) Derive(c *gin.Context) {
	var req DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("body must be {\"user\": ..., \"entity\": ...}"))
		return
	}
	c.JSON(http.StatusOK, h.accessService.Derive(req.User, req.Entity))
}
