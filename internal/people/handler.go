package people

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for people operations
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers people routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/people")
	{
		group.GET("", h.list)
		group.POST("", h.create)
		group.GET("/:email", h.get)
		group.PATCH("/:email", h.update)
		group.DELETE("/:email", h.delete)

		group.POST("/:email/roles", h.addRole)
		group.DELETE("/:email/roles/:role", h.removeRole)
	}
	router.GET("/masthead", h.masthead)
}

func (h *Handler) list(c *gin.Context) {
	persons, err := h.service.Read(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, persons)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.service.ReadOne(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.Update(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	email := c.Param("email")
	if err := h.service.Delete(c.Request.Context(), email); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": email})
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) addRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.AddRole(c.Request.Context(), c.Param("email"), req.Role)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) removeRole(c *gin.Context) {
	p, err := h.service.RemoveRole(c.Request.Context(), c.Param("email"), c.Param("role"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) masthead(c *gin.Context) {
	masthead, err := h.service.Masthead(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Masthead": masthead})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPersonExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrBadEmail), errors.Is(err, ErrBadName), errors.Is(err, ErrBadRole):
		c.JSON(http.StatusNotAcceptable, gin.H{"error": err.Error()})
	default:
		h.logger.Error("people request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
