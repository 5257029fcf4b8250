package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/pkg/response"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send stores a direct message
// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, appErr := h.messageService.Send(middleware.GetUserID(c), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Created(c, message)
}

// Conversations lists conversations grouped by partner
// GET /api/messages/conversations
func (h *MessageHandler) Conversations(c *gin.Context) {
	summaries, appErr := h.messageService.Conversations(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, summaries)
}

// ConversationWith returns the exchange with one user and marks incoming
// messages read
// GET /api/messages/with/:userId
func (h *MessageHandler) ConversationWith(c *gin.Context) {
	partnerID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	messages, appErr := h.messageService.ConversationWith(middleware.GetUserID(c), uint(partnerID))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, messages)
}

// UnreadCount returns the number of unread incoming messages
// GET /api/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, appErr := h.messageService.UnreadCount(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// MarkRead marks one incoming message as read
// PUT /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if appErr := h.messageService.MarkRead(middleware.GetUserID(c), uint(id)); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "marked read"})
}
