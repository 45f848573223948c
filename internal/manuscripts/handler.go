package manuscripts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/people"
)

// Handler handles HTTP requests for manuscript operations
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers manuscript routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/manuscripts")
	{
		group.GET("", h.list)
		group.POST("", h.submit)
		group.GET("/:id", h.get)
		group.DELETE("/:id", h.delete)

		group.POST("/:id/actions", h.applyAction)
		group.POST("/:id/state", h.moveState)
		group.GET("/:id/valid-actions", h.validActions)
		group.GET("/:id/valid-states", h.validStates)
		group.GET("/:id/export", h.export)
	}
	meta := router.Group("/meta")
	{
		meta.GET("/states", h.states)
		meta.GET("/actions", h.actions)
	}
}

func (h *Handler) list(c *gin.Context) {
	var state *State
	if raw := c.Query("state"); raw != "" {
		s := State(raw)
		state = &s
	}
	manuscripts, err := h.service.List(c.Request.Context(), state)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, manuscripts)
}

func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id.String()})
}

type actionRequest struct {
	UserEmail string `json:"user_email" binding:"required"`
	Action    Action `json:"action" binding:"required"`
	Referee   string `json:"referee"`
}

func (h *Handler) applyAction(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.service.ApplyAction(c.Request.Context(), id, req.UserEmail, req.Action, req.Referee)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type moveRequest struct {
	UserEmail string `json:"user_email" binding:"required"`
	State     State  `json:"state" binding:"required"`
}

func (h *Handler) moveState(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.service.MoveState(c.Request.Context(), id, req.UserEmail, req.State)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) validActions(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	actions, err := h.service.ValidActionsFor(c.Request.Context(), id, c.Query("user_email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid_actions": actions})
}

func (h *Handler) validStates(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	states, err := h.service.ValidStatesFor(c.Request.Context(), id, c.Query("user_email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid_states": states})
}

func (h *Handler) export(c *gin.Context) {
	id, ok := h.manuscriptID(c)
	if !ok {
		return
	}
	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	pdf, err := RenderPDF(m)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="manuscript.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) states(c *gin.Context) {
	out := make(map[State]string, len(GetStates()))
	for _, state := range GetStates() {
		out[state] = StateName(state)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) actions(c *gin.Context) {
	out := make(map[Action]string, len(GetActions()))
	for _, action := range GetActions() {
		out[action] = ActionName(action)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) manuscriptID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manuscript id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrManuscriptNotFound), errors.Is(err, people.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateReferee), errors.Is(err, ErrRefereeNotListed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrRefereeRequired), errors.Is(err, ErrBadTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("manuscript request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
