package chat

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
	chat := rg.Group("/chat")

	chat.POST("", h.chat)
	chat.GET("/providers", h.providers)
	chat.GET("/history/:session_id", h.history)
	chat.DELETE("/history/:session_id", h.clearHistory)
}

func (h *Handler) chat(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Message is required")
		return
	}

	result, err := h.svc.Chat(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMessageRequired):
			response.BadRequest(c, "Message is required")
		case errors.Is(err, ErrUnknownProvider):
			response.BadRequest(c, "Unknown provider")
		case errors.Is(err, ErrNoProvider):
			response.UnprocessableEntity(c, "No chat provider is configured")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, result)
}

func (h *Handler) providers(c *gin.Context) {
	providers := h.svc.Providers()
	response.List(c, providers, len(providers))
}

func (h *Handler) history(c *gin.Context) {
	msgs, err := h.svc.SessionHistory(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.List(c, msgs, len(msgs))
}

func (h *Handler) clearHistory(c *gin.Context) {
	if err := h.svc.ClearSession(c.Request.Context(), c.Param("session_id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, nil, "Chat history cleared")
}
