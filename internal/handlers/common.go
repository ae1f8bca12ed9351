package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps the apperrors taxonomy to HTTP statuses. Unrecognised
// errors become 500 with a generic message; the detail stays in the log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrBusinessRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please create a business first"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// currentUser resolves the authenticated user from the token subject.
func currentUser(c *gin.Context, userSvc portssvc.UserSvcFacade) (*domain.User, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	user, err := userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not found"})
			return nil, false
		}
		respondError(c, err)
		return nil, false
	}
	return user, true
}

// currentBusinessID resolves the caller's business id. Every tenant-scoped
// endpoint requires the caller to have created a business first.
func currentBusinessID(c *gin.Context, userSvc portssvc.UserSvcFacade) (string, bool) {
	user, ok := currentUser(c, userSvc)
	if !ok {
		return "", false
	}
	if user.BusinessID == nil || *user.BusinessID == "" {
		respondError(c, apperrors.ErrBusinessRequired)
		return "", false
	}
	return *user.BusinessID, true
}
