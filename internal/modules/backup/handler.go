package backup

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/notedesk/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bk := rg.Group("/backup")

	bk.POST("", h.create)
	bk.GET("/latest", h.latest)
	bk.POST("/restore", h.restore)
}

func (h *Handler) create(c *gin.Context) {
	snap, err := h.svc.Export(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, snap, "Backup created successfully")
}

func (h *Handler) latest(c *gin.Context) {
	snap, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "No backup found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, snap)
}

func (h *Handler) restore(c *gin.Context) {
	count, err := h.svc.Restore(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "No backup found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, gin.H{"restored": count}, "Backup restored successfully")
}
