package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/response"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
)

type FoodGroupService interface {
	Assign(ctx context.Context, seed int64) (domain.FoodGroupReport, error)
	Clear(ctx context.Context) (int64, error)
	Fetch(ctx context.Context) (map[int][]string, int, error)
}

type FoodGroupHandler struct {
	svc  FoodGroupService
	uSvc UserService
}

func NewFoodGroupHandler(svc FoodGroupService, uSvc UserService) *FoodGroupHandler {
	return &FoodGroupHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

type assignRequest struct {
	// Seed pins the shuffle; 0 means "pick one from the clock".
	Seed int64 `json:"seed"`
}

// HandleAssignFoodGroups godoc
// @Summary      Assign accepted applicants to meal groups
// @Description  Distributes every newly eligible applicant across the four groups, keeping existing assignments frozen.
// @Tags         food-groups
// @Accept       json
// @Produce      json
// @Param        request  body      assignRequest false "optional shuffle seed"
// @Success      200      {object}  response.FoodGroupAssignResponse
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/food-groups/assign [post]
// @Security BearerAuth
func (h *FoodGroupHandler) HandleAssignFoodGroups(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req assignRequest
	// The body is optional; a missing or empty one means default seed.
	_ = ctx.ShouldBindJSON(&req)
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	report, err := h.svc.Assign(ctx.Request.Context(), req.Seed)
	if err != nil {
		err = fmt.Errorf("v1.HandleAssignFoodGroups -> h.svc.Assign -> %w", err)
		response.RenderErr(ctx, response.ErrOperationFailed("assign food groups", err))
		return
	}

	ctx.JSON(http.StatusOK, response.FoodGroupAssignResponse{
		NewlyAssigned: report.NewlyAssigned,
		TotalEligible: report.TotalEligible,
		GroupCounts:   report.GroupCounts,
	})
}

// HandleClearFoodGroups godoc
// @Summary      Delete every meal-group assignment
// @Description  Irreversible. Requires confirm=true.
// @Tags         food-groups
// @Produce      json
// @Param        confirm  query     bool    true  "must be true"
// @Success      200      {object}  response.FoodGroupClearResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/food-groups [delete]
// @Security BearerAuth
func (h *FoodGroupHandler) HandleClearFoodGroups(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if ctx.Query("confirm") != "true" {
		response.RenderErr(ctx, response.ErrBadRequest(
			fmt.Errorf("clearing food groups is irreversible, pass confirm=true")))
		return
	}

	deleted, err := h.svc.Clear(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleClearFoodGroups -> h.svc.Clear -> %w", err)
		response.RenderErr(ctx, response.ErrOperationFailed("clear food groups", err))
		return
	}

	ctx.JSON(http.StatusOK, response.FoodGroupClearResponse{Deleted: deleted})
}

// HandleFetchFoodGroups godoc
// @Summary      Current meal-group membership
// @Tags         food-groups
// @Produce      json
// @Success      200  {object}  response.FoodGroupFetchResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/food-groups [get]
// @Security BearerAuth
func (h *FoodGroupHandler) HandleFetchFoodGroups(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleAdmin, domain.RoleDirector, domain.RoleQRScanner); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groups, total, err := h.svc.Fetch(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleFetchFoodGroups -> h.svc.Fetch -> %w", err)
		response.RenderErr(ctx, response.ErrOperationFailed("fetch food groups", err))
		return
	}

	ctx.JSON(http.StatusOK, response.FoodGroupFetchResponse{
		Groups: groups,
		Total:  total,
	})
}
