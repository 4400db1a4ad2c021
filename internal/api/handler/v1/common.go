package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/response"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/middleware"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetRoles(ctx context.Context, email string) (map[string]bool, error)
	GrantRole(ctx context.Context, email, role string) error
	RevokeRole(ctx context.Context, email, role string) error
}

// getUserFromContext resolves the authenticated user set by the JWT
// middleware, roles included.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("unauthorized")
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("unauthorized")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized("unauthorized")
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

// requireAnyRole gates privileged operations behind role claims.
func requireAnyRole(user domain.User, roles ...string) *response.Err {
	if !user.HasAnyRole(roles...) {
		return response.ErrPermissionDenied(fmt.Errorf("user %v is missing the required role", user.ID))
	}

	return nil
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
