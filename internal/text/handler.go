package text

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/people"
)

// Handler handles HTTP requests for journal text operations
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers text routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/text")
	{
		group.GET("", h.list)
		group.GET("/:key", h.get)
		group.POST("/:key", h.create)
		group.PATCH("/:key", h.update)
		group.DELETE("/:key", h.delete)
	}
}

func (h *Handler) list(c *gin.Context) {
	pages, err := h.service.Read(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.service.ReadOne(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Create(c.Request.Context(), c.Query("user_email"), c.Param("key"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Update(c.Request.Context(), c.Query("user_email"), c.Param("key"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	key := c.Param("key")
	if err := h.service.Delete(c.Request.Context(), c.Query("user_email"), key); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": key})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPageNotFound), errors.Is(err, people.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPageExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.logger.Error("text request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
