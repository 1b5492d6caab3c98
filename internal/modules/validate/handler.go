package validate

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
	rg.POST("/validate", h.record)
	rg.GET("/validations", h.list)
	rg.GET("/validation/:api_key", h.get)
}

func (h *Handler) record(c *gin.Context) {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "API key is required")
		return
	}

	row, err := h.svc.Record(body.APIKey)
	if err != nil {
		if errors.Is(err, ErrKeyRequired) {
			response.BadRequest(c, "API key is required")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, row, "API validation recorded successfully")
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.List(c, rows, len(rows))
}

func (h *Handler) get(c *gin.Context) {
	row, err := h.svc.Get(c.Param("api_key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, "API validation not found")
		return
	}
	response.OK(c, row)
}
