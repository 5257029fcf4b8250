package models

import (
	"time"

	"gorm.io/gorm"
)

// Game statuses
const (
	GameStatusOpen       = "open"
	GameStatusInProgress = "in_progress"
	GameStatusCompleted  = "completed"
	GameStatusCancelled  = "cancelled"
)

// Invitation / request entry statuses. Pending is the only actionable one.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Sports is the fixed sport type enumeration.
var Sports = []string{
	"Soccer", "Basketball", "Baseball", "Football", "Tennis", "Volleyball",
	"Cricket", "Hockey", "Rugby", "Table Tennis", "Badminton", "Golf",
	"Softball", "Lacrosse", "Ultimate Frisbee", "Track", "Swimming",
	"Wrestling", "Rowing", "Field Hockey", "Other",
}

var sportSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Sports))
	for _, s := range Sports {
		m[s] = struct{}{}
	}
	return m
}()

// ValidSport reports whether s is one of the fixed sport types.
func ValidSport(s string) bool {
	_, ok := sportSet[s]
	return ok
}

// Game is a time/location-bound sporting event. The roster lives in the
// game_players join table; the creator is always a roster member. Invitation
// and request entries are append-only logs whose statuses mutate in place.
type Game struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	PublicID    string           `gorm:"uniqueIndex;size:36" json:"public_id"`
	Name        string           `gorm:"size:200;not null" json:"name"`
	SportType   string           `gorm:"size:50;not null;index" json:"sport_type"`
	CreatorID   uint             `gorm:"index;not null" json:"creator_id"`
	Creator     *User            `gorm:"foreignKey:CreatorID" json:"-"`
	Players     []User           `gorm:"many2many:game_players" json:"-"`
	MaxPlayers  int              `gorm:"default:10" json:"max_players"`
	Invitations []GameInvitation `gorm:"foreignKey:GameID" json:"invitations,omitempty"`
	Requests    []GameRequest    `gorm:"foreignKey:GameID" json:"-"`
	Status      string           `gorm:"size:20;default:open;index" json:"status"`
	Location    string           `gorm:"size:255" json:"location"`
	StartAt     time.Time        `gorm:"index" json:"start_at"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// GameInvitation is a creator-initiated offer to a specific email.
type GameInvitation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"index;not null" json:"game_id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Status    string    `gorm:"size:20;default:pending" json:"status"`
	InvitedAt time.Time `gorm:"autoCreateTime" json:"invited_at"`
}

// GameRequest is a user-initiated ask to join a game.
type GameRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GameID      uint      `gorm:"index;not null" json:"game_id"`
	Email       string    `gorm:"size:255;not null;index" json:"email"`
	Status      string    `gorm:"size:20;default:pending" json:"status"`
	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
}

func (Game) TableName() string           { return "games" }
func (GameInvitation) TableName() string { return "game_invitations" }
func (GameRequest) TableName() string    { return "game_requests" }

// HasPlayer reports whether the user id is on the loaded roster.
func (g *Game) HasPlayer(userID uint) bool {
	for _, p := range g.Players {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// PendingInvitation returns the first pending invitation for the email, if any.
func (g *Game) PendingInvitation(email string) *GameInvitation {
	for i := range g.Invitations {
		if g.Invitations[i].Email == email && g.Invitations[i].Status == StatusPending {
			return &g.Invitations[i]
		}
	}
	return nil
}

// PendingRequest returns the first pending request for the email, if any.
func (g *Game) PendingRequest(email string) *GameRequest {
	for i := range g.Requests {
		if g.Requests[i].Email == email && g.Requests[i].Status == StatusPending {
			return &g.Requests[i]
		}
	}
	return nil
}
