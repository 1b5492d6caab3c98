package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/notedesk/core/internal/pkg/response"
)

const msgSettingNotFound = "Setting not found"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	st := rg.Group("/settings")

	st.GET("", h.list)
	st.GET("/:key", h.get)
	st.PATCH("/:key", h.set)
	st.DELETE("/:key", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.All()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.List(c, rows, len(rows))
}

func (h *Handler) get(c *gin.Context) {
	row, err := h.svc.Get(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, msgSettingNotFound)
		return
	}
	response.OK(c, row)
}

func (h *Handler) set(c *gin.Context) {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Value is required")
		return
	}

	row, err := h.svc.Set(c.Param("key"), body.Value)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, row, "Setting updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	existed, err := h.svc.Delete(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !existed {
		response.NotFound(c, msgSettingNotFound)
		return
	}
	response.OKMsg(c, nil, "Setting deleted successfully")
}
