package models

import "time"

// Notification categories
const (
	NotificationCategoryGame       = "game"
	NotificationCategoryRequest    = "request"
	NotificationCategoryInvitation = "invitation"
)

// Notification types
const (
	NotificationTypeAccept = "accept"
	NotificationTypeReject = "reject"
	NotificationTypeJoin   = "join"
)

// Notification is a user-visible event recorded as a side effect of a
// membership mutation. The inbox is polled, never pushed.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	GameID    uint      `gorm:"index;not null" json:"game_id"`
	Game      *Game     `gorm:"foreignKey:GameID" json:"game,omitempty"`
	Category  string    `gorm:"size:20;not null" json:"category"` // game, request, invitation
	Type      string    `gorm:"size:20;not null" json:"type"`     // accept, reject, join
	Title     string    `gorm:"size:255;not null" json:"title"`
	Unread    bool      `gorm:"default:true" json:"unread"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
