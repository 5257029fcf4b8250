package services

import (
	"errors"

	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify records an inbox entry for a user. Callers treat failures as
// non-fatal: the mutation that triggered the notification has already
// committed.
func (s *NotificationService) Notify(userID, gameID uint, category, ntype, title string) error {
	n := models.Notification{
		UserID:   userID,
		GameID:   gameID,
		Category: category,
		Type:     ntype,
		Title:    title,
		Unread:   true,
	}
	return s.db.Create(&n).Error
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(userID uint, unreadOnly bool) ([]models.Notification, *response.AppError) {
	query := s.db.Preload("Game").Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("unread = ?", true)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return nil, response.NewServerError("failed to list notifications")
	}
	return notifications, nil
}

// UnreadCount returns how many unread notifications the user has.
func (s *NotificationService) UnreadCount(userID uint) (int64, *response.AppError) {
	var count int64
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND unread = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, response.NewServerError("failed to count notifications")
	}
	return count, nil
}

// MarkRead marks one notification as read. Only the owner can mark it.
func (s *NotificationService) MarkRead(userID, notificationID uint) *response.AppError {
	var n models.Notification
	if err := s.db.First(&n, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("notification not found")
		}
		return response.NewServerError("database error")
	}
	if n.UserID != userID {
		return response.NewForbidden("not your notification")
	}

	if err := s.db.Model(&n).Update("unread", false).Error; err != nil {
		return response.NewServerError("failed to update notification")
	}
	return nil
}

// MarkAllRead marks every unread notification for the user as read.
func (s *NotificationService) MarkAllRead(userID uint) *response.AppError {
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND unread = ?", userID, true).
		Update("unread", false).Error; err != nil {
		return response.NewServerError("failed to update notifications")
	}
	return nil
}
