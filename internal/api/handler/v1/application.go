package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/request"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/response"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/config"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/service"
)

type ApplicationService interface {
	Submit(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error)
	Update(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error)
	Get(ctx context.Context, email string) (domain.Applicant, error)
	Confirm(ctx context.Context, email string) error
	Withdraw(ctx context.Context, email string) error
}

type ApplicationHandler struct {
	conf  *config.APIConfig
	svc   ApplicationService
	uSvc  UserService
	store *questions.Store
}

func NewApplicationHandler(conf *config.APIConfig, svc ApplicationService, uSvc UserService, store *questions.Store) *ApplicationHandler {
	return &ApplicationHandler{
		conf:  conf,
		svc:   svc,
		uSvc:  uSvc,
		store: store,
	}
}

// requireInstitutionalEmail blocks registration from outside addresses
// unless the user holds the exception claim.
func (h *ApplicationHandler) requireInstitutionalEmail(user domain.User) *response.Err {
	if domain.HasInstitutionalEmail(user.Email, h.conf.InstitutionDomain) || user.HasRole(domain.RoleException) {
		return nil
	}

	return response.ErrPermissionDenied(
		fmt.Errorf("user %v is not using a %v address", user.ID, h.conf.InstitutionDomain))
}

// HandleSubmitApplication godoc
// @Summary      Submit the registration form
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        request  body      request.ApplicationForm true "request body"
// @Success      201      {object}  response.SubmitApplicationResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /applications [post]
// @Security BearerAuth
func (h *ApplicationHandler) HandleSubmitApplication(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = h.requireInstitutionalEmail(user); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var form request.ApplicationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(h.store.Current()); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	applicant, err := h.svc.Submit(ctx.Request.Context(), form.ToDomain(user.Email))
	if err != nil {
		if errors.Is(err, service.ErrApplicationExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrApplicationExists))
			return
		}

		err = fmt.Errorf("v1.HandleSubmitApplication -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.SubmitApplicationResponse{
		Success:   true,
		Message:   "application submitted",
		Applicant: &applicant,
	})
}

// HandleUpdateApplication godoc
// @Summary      Update a submitted registration
// @Description  The extended variant: the hear-about, project-interest and main-goals selections are required too.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        request  body      request.ApplicationForm true "request body"
// @Success      200      {object}  response.SubmitApplicationResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /applications [put]
// @Security BearerAuth
func (h *ApplicationHandler) HandleUpdateApplication(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var form request.ApplicationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.ValidateUpdate(h.store.Current()); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	applicant, err := h.svc.Update(ctx.Request.Context(), form.ToDomain(user.Email))
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "email", user.Email))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateApplication -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SubmitApplicationResponse{
		Success:   true,
		Message:   "application updated",
		Applicant: &applicant,
	})
}

// HandleGetMyApplication godoc
// @Summary      Get the caller's application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  domain.Applicant
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /applications/me [get]
// @Security BearerAuth
func (h *ApplicationHandler) HandleGetMyApplication(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	applicant, err := h.svc.Get(ctx.Request.Context(), user.Email)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "email", user.Email))
			return
		}

		err = fmt.Errorf("v1.HandleGetMyApplication -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, applicant)
}

// HandleConfirmAttendance godoc
// @Summary      Confirm an accepted application
// @Description  Only valid while the application status is exactly "accepted".
// @Tags         applications
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /applications/confirm [post]
// @Security BearerAuth
func (h *ApplicationHandler) HandleConfirmAttendance(ctx *gin.Context) {
	h.selfDecide(ctx, "confirmed")
}

// HandleWithdraw godoc
// @Summary      Withdraw an accepted application
// @Description  Only valid while the application status is exactly "accepted".
// @Tags         applications
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /applications/withdraw [post]
// @Security BearerAuth
func (h *ApplicationHandler) HandleWithdraw(ctx *gin.Context) {
	h.selfDecide(ctx, "withdrawn")
}

func (h *ApplicationHandler) selfDecide(ctx *gin.Context, action string) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var err error
	if action == "confirmed" {
		err = h.svc.Confirm(ctx.Request.Context(), user.Email)
	} else {
		err = h.svc.Withdraw(ctx.Request.Context(), user.Email)
	}
	if err != nil {
		if errors.Is(err, service.ErrNotAccepted) || errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.selfDecide -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "application " + action})
}
