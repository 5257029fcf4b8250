package models

import "time"

// Message types
const (
	MessageTypeText       = "text"
	MessageTypeGameInvite = "game_invite"
	MessageTypeSystem     = "system"
)

// Message is a direct message between two users, optionally tied to a game.
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SenderID      uint      `gorm:"index;not null" json:"sender_id"`
	Sender        *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID    uint      `gorm:"index;not null" json:"receiver_id"`
	Receiver      *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	MessageType   string    `gorm:"size:20;default:text" json:"message_type"` // text, game_invite, system
	RelatedGameID *uint     `json:"related_game_id,omitempty"`
	IsRead        bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
