package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/request"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/response"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/service"
)

type AdminApplicationService interface {
	List(ctx context.Context, status string) ([]domain.Applicant, error)
	SetStatus(ctx context.Context, email, status string) error
	Stats(ctx context.Context) (map[string]int64, error)
}

type AdminHandler struct {
	svc  AdminApplicationService
	uSvc UserService
}

func NewAdminHandler(svc AdminApplicationService, uSvc UserService) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListApplications godoc
// @Summary      List applications
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "filter by application status"
// @Success      200     {array}   domain.Applicant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /admin/applications [get]
// @Security BearerAuth
func (h *AdminHandler) HandleListApplications(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	applicants, err := h.svc.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleListApplications -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, applicants)
}

// HandleUpdateStatus godoc
// @Summary      Decide on an application
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateStatusRequest true "request body"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/applications/status [put]
// @Security BearerAuth
func (h *AdminHandler) HandleUpdateStatus(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SetStatus(ctx.Request.Context(), req.Email, req.Status); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "email", req.Email))
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStatus -> h.svc.SetStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// HandleStats godoc
// @Summary      Per-status application counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/stats [get]
// @Security BearerAuth
func (h *AdminHandler) HandleStats(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	counts, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.StatsResponse{Counts: counts})
}

// HandleGetRoles godoc
// @Summary      Get a user's role claims
// @Tags         admin
// @Produce      json
// @Param        email  path      string  true  "user email"
// @Success      200    {object}  response.RolesResponse
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /admin/roles/{email} [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetRoles(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	email := ctx.Param("email")
	roles, err := h.uSvc.GetRoles(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRoles -> h.uSvc.GetRoles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.RolesResponse{Email: email, Roles: roles})
}

// HandleGrantRole godoc
// @Summary      Grant a role claim
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.RoleRequest true "request body"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/roles [post]
// @Security BearerAuth
func (h *AdminHandler) HandleGrantRole(ctx *gin.Context) {
	h.modifyRole(ctx, true)
}

// HandleRevokeRole godoc
// @Summary      Revoke a role claim
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.RoleRequest true "request body"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/roles [delete]
// @Security BearerAuth
func (h *AdminHandler) HandleRevokeRole(ctx *gin.Context) {
	h.modifyRole(ctx, false)
}

func (h *AdminHandler) modifyRole(ctx *gin.Context, grant bool) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var err error
	if grant {
		err = h.uSvc.GrantRole(ctx.Request.Context(), req.Email, req.Role)
	} else {
		err = h.uSvc.RevokeRole(ctx.Request.Context(), req.Email, req.Role)
	}
	if err != nil {
		if errors.Is(err, service.ErrUnknownRole) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.modifyRole -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "roles updated"})
}
