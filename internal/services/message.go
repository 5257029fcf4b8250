package services

import (
	"errors"
	"sort"

	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type SendMessageRequest struct {
	ReceiverID    uint   `json:"receiver_id" binding:"required"`
	Content       string `json:"content" binding:"required,max=2000"`
	MessageType   string `json:"message_type" binding:"omitempty,oneof=text game_invite system"`
	RelatedGameID *uint  `json:"related_game_id"`
}

// ConversationSummary is one row in the conversation list: the partner, the
// latest message and how many incoming messages are unread.
type ConversationSummary struct {
	Partner     models.PlayerView `json:"partner"`
	LastMessage models.Message    `json:"last_message"`
	UnreadCount int64             `json:"unread_count"`
}

// Send stores a direct message to another user.
func (s *MessageService) Send(senderID uint, req *SendMessageRequest) (*models.Message, *response.AppError) {
	if req.ReceiverID == senderID {
		return nil, response.NewValidation("cannot message yourself")
	}

	var receiver models.User
	if err := s.db.First(&receiver, req.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("receiver not found")
		}
		return nil, response.NewServerError("database error")
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	if req.RelatedGameID != nil {
		var count int64
		s.db.Model(&models.Game{}).Where("id = ?", *req.RelatedGameID).Count(&count)
		if count == 0 {
			return nil, response.NewNotFound("related game not found")
		}
	}

	message := models.Message{
		SenderID:      senderID,
		ReceiverID:    req.ReceiverID,
		Content:       req.Content,
		MessageType:   messageType,
		RelatedGameID: req.RelatedGameID,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, response.NewServerError("failed to send message")
	}

	s.db.Preload("Sender").Preload("Receiver").First(&message, message.ID)
	return &message, nil
}

// Conversations lists the user's conversations grouped by partner, newest
// activity first.
func (s *MessageService) Conversations(userID uint) ([]ConversationSummary, *response.AppError) {
	var messages []models.Message
	if err := s.db.
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, response.NewServerError("failed to list messages")
	}

	// Messages come newest-first, so the first one seen per partner is the
	// latest in that conversation.
	latest := make(map[uint]*models.Message)
	unread := make(map[uint]int64)
	var order []uint

	for i := range messages {
		m := &messages[i]
		partnerID := m.SenderID
		if partnerID == userID {
			partnerID = m.ReceiverID
		}
		if _, seen := latest[partnerID]; !seen {
			latest[partnerID] = m
			order = append(order, partnerID)
		}
		if m.ReceiverID == userID && !m.IsRead {
			unread[partnerID]++
		}
	}

	summaries := make([]ConversationSummary, 0, len(order))
	for _, partnerID := range order {
		m := latest[partnerID]
		var partner *models.User
		if m.SenderID == partnerID {
			partner = m.Sender
		} else {
			partner = m.Receiver
		}
		if partner == nil {
			continue
		}
		summaries = append(summaries, ConversationSummary{
			Partner:     partner.View(),
			LastMessage: *m,
			UnreadCount: unread[partnerID],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})
	return summaries, nil
}

// ConversationWith returns the full exchange with one user, oldest first, and
// marks the incoming half as read.
func (s *MessageService) ConversationWith(userID, partnerID uint) ([]models.Message, *response.AppError) {
	var count int64
	s.db.Model(&models.User{}).Where("id = ?", partnerID).Count(&count)
	if count == 0 {
		return nil, response.NewNotFound("user not found")
	}

	var messages []models.Message
	if err := s.db.
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, response.NewServerError("failed to load conversation")
	}

	if err := s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
		Update("is_read", true).Error; err != nil {
		return nil, response.NewServerError("failed to mark messages read")
	}

	return messages, nil
}

// UnreadCount returns how many incoming messages are unread across all
// conversations.
func (s *MessageService) UnreadCount(userID uint) (int64, *response.AppError) {
	var count int64
	if err := s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, response.NewServerError("failed to count messages")
	}
	return count, nil
}

// MarkRead marks one incoming message as read. Only the receiver can mark it.
func (s *MessageService) MarkRead(userID, messageID uint) *response.AppError {
	var message models.Message
	if err := s.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("message not found")
		}
		return response.NewServerError("database error")
	}
	if message.ReceiverID != userID {
		return response.NewForbidden("not your message")
	}

	if err := s.db.Model(&message).Update("is_read", true).Error; err != nil {
		return response.NewServerError("failed to mark message read")
	}
	return nil
}
