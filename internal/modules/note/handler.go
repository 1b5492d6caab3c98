package note

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notedesk/core/internal/pkg/response"
)

const msgNoteNotFound = "Note not found"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")

	notes.GET("", h.list)
	notes.GET("/variants", h.listVariants)
	notes.GET("/:id", h.get)
	notes.POST("", h.create)
	notes.PUT("/:id", h.update)
	notes.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.List(c, rows, len(rows))
}

func (h *Handler) listVariants(c *gin.Context) {
	items, err := h.svc.ListVariants()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.List(c, items, len(items))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := h.svc.Get(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, msgNoteNotFound)
		return
	}
	response.OK(c, row)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			response.BadRequest(c, "Title is required")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, row, "Note created successfully")
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, msgNoteNotFound)
		return
	}
	response.OKMsg(c, row, "Note updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	row, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, msgNoteNotFound)
		return
	}
	response.OKMsg(c, row, "Note deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
