package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/liceo-connect/liceo-api/internal/dto"
	"github.com/liceo-connect/liceo-api/pkg/response"
)

type messageService interface {
	Send(ctx context.Context, req dto.SendMessageRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, userID int64) ([]dto.MessageItem, error)
}

// MessageHandler exposes internal messaging endpoints.
type MessageHandler struct {
	messages messageService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages messageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Send godoc
// @Summary Send a message
// @Tags Mensajes
// @Accept json
// @Produce json
// @Param payload body dto.SendMessageRequest true "Message payload"
// @Success 200 {object} dto.MessageResponse
// @Router /mensajes [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	res, err := h.messages.Send(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// List godoc
// @Summary List messages sent or received by a user
// @Tags Mensajes
// @Produce json
// @Param usuario_id path int true "User id"
// @Success 200 {array} dto.MessageItem
// @Router /mensajes/{usuario_id} [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID, err := idParam(c, "usuario_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.messages.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}
