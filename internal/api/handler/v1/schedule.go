package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/request"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/api/handler/v1/response"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled at the router level.
	},
}

type ScheduleService interface {
	CreateEntry(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error)
	GetEntries(ctx context.Context) ([]domain.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, id uint) error
}

// scheduleEvent is what live subscribers receive whenever the schedule
// changes.
type scheduleEvent struct {
	Action string                `json:"action"` // "created", "updated" or "deleted"
	Entry  *domain.ScheduleEntry `json:"entry,omitempty"`
	ID     uint                  `json:"id,omitempty"`
}

type ScheduleHandler struct {
	svc  ScheduleService
	uSvc UserService

	clientsMutex sync.RWMutex
	clients      map[*websocket.Conn]bool
}

func NewScheduleHandler(svc ScheduleService, uSvc UserService) *ScheduleHandler {
	return &ScheduleHandler{
		svc:     svc,
		uSvc:    uSvc,
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleGetSchedule godoc
// @Summary      The event schedule
// @Tags         schedule
// @Produce      json
// @Success      200  {array}   domain.ScheduleEntry
// @Failure      500  {object}  response.Err
// @Router       /schedule [get]
func (h *ScheduleHandler) HandleGetSchedule(ctx *gin.Context) {
	entries, err := h.svc.GetEntries(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSchedule -> h.svc.GetEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleScheduleLive subscribes the caller to schedule change events over
// a websocket. The feed is read-only; inbound messages are discarded.
func (h *ScheduleHandler) HandleScheduleLive(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("schedule feed upgrade failed", zap.Error(err))
		return
	}

	h.clientsMutex.Lock()
	h.clients[conn] = true
	h.clientsMutex.Unlock()

	go func() {
		defer func() {
			h.clientsMutex.Lock()
			delete(h.clients, conn)
			h.clientsMutex.Unlock()
			_ = conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *ScheduleHandler) broadcast(event scheduleEvent) {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			zap.L().Warn("schedule feed write failed", zap.Error(err))
		}
	}
}

// HandleCreateEntry godoc
// @Summary      Add a schedule entry
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        request  body      request.ScheduleEntryRequest true "request body"
// @Success      201      {object}  domain.ScheduleEntry
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule [post]
// @Security BearerAuth
func (h *ScheduleHandler) HandleCreateEntry(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleWebDev, domain.RoleDirector, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ScheduleEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.CreateEntry(ctx.Request.Context(), req.ToDomain(0))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEntry -> h.svc.CreateEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.broadcast(scheduleEvent{Action: "created", Entry: &entry})

	ctx.JSON(http.StatusCreated, entry)
}

// HandleUpdateEntry godoc
// @Summary      Update a schedule entry
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        entryID  path      int  true  "entry ID"
// @Param        request  body      request.ScheduleEntryRequest true "request body"
// @Success      200      {object}  domain.ScheduleEntry
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule/{entryID} [put]
// @Security BearerAuth
func (h *ScheduleHandler) HandleUpdateEntry(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleWebDev, domain.RoleDirector, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entryID, err := strconv.ParseUint(ctx.Param("entryID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid entry ID: %w", err)))
		return
	}

	var req request.ScheduleEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.UpdateEntry(ctx.Request.Context(), req.ToDomain(uint(entryID)))
	if err != nil {
		if errors.Is(err, service.ErrScheduleEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("schedule entry", "id", entryID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEntry -> h.svc.UpdateEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.broadcast(scheduleEvent{Action: "updated", Entry: &entry})

	ctx.JSON(http.StatusOK, entry)
}

// HandleDeleteEntry godoc
// @Summary      Remove a schedule entry
// @Tags         schedule
// @Produce      json
// @Param        entryID  path      int  true  "entry ID"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule/{entryID} [delete]
// @Security BearerAuth
func (h *ScheduleHandler) HandleDeleteEntry(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr = requireAnyRole(user, domain.RoleWebDev, domain.RoleDirector, domain.RoleAdmin); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entryID, err := strconv.ParseUint(ctx.Param("entryID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid entry ID: %w", err)))
		return
	}

	if err := h.svc.DeleteEntry(ctx.Request.Context(), uint(entryID)); err != nil {
		if errors.Is(err, service.ErrScheduleEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("schedule entry", "id", entryID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEntry -> h.svc.DeleteEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.broadcast(scheduleEvent{Action: "deleted", ID: uint(entryID)})

	ctx.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
