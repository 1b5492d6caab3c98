package render

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notedesk/core/internal/pkg/response"

	"github.com/notedesk/core/internal/modules/note"
)

// Handler serves HTML renderings of stored notes. Articles and plain notes
// render their prose as markdown; other kinds have no prose body and 404.
type Handler struct {
	notes *note.Service
}

func NewHandler(notes *note.Service) *Handler {
	return &Handler{notes: notes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notes/:id/html", h.noteHTML)
}

func (h *Handler) noteHTML(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	row, err := h.notes.Get(uint(id))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, "Note not found")
		return
	}

	var prose string
	switch v := h.notes.Codec().Decode(row).(type) {
	case note.Article:
		prose = v.Content
	case note.TextNote:
		prose = v.Content
	default:
		response.UnprocessableEntity(c, "Note has no prose body")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(Markdown(prose)))
}
