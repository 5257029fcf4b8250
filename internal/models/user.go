package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// User represents an app user. Accounts start unverified and are activated
// by a one-time code; profile fields (age, sport interests) are filled in by
// a separate profile-creation step.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email          string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Name           string         `gorm:"size:100" json:"name"`
	Verified       bool           `gorm:"default:false" json:"verified"`
	OTPCode        string         `gorm:"size:10" json:"-"`
	OTPExpiresAt   *time.Time     `json:"-"`
	DisplayPicture string         `gorm:"size:500" json:"display_picture,omitempty"`
	Age            *int           `json:"age,omitempty"`
	SportInterests string         `gorm:"type:text" json:"-"` // JSON map: sport -> skill level 1-4
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Interests decodes the stored sport interest map. An empty column yields an
// empty, non-nil map.
func (u *User) Interests() map[string]int {
	interests := make(map[string]int)
	if u.SportInterests != "" {
		_ = json.Unmarshal([]byte(u.SportInterests), &interests)
	}
	return interests
}

// SetInterests encodes and stores the sport interest map.
func (u *User) SetInterests(interests map[string]int) error {
	data, err := json.Marshal(interests)
	if err != nil {
		return err
	}
	u.SportInterests = string(data)
	return nil
}

// HasProfile reports whether the profile-creation step has run: an age is set
// or at least one sport interest is recorded.
func (u *User) HasProfile() bool {
	return u.Age != nil || len(u.Interests()) > 0
}

// PlayerView is the consistently-typed user reference returned wherever a
// game embeds its creator, roster or requesters.
type PlayerView struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Age            *int           `json:"age,omitempty"`
	SportInterests map[string]int `json:"sport_interests"`
}

// View projects the user into its public player form.
func (u *User) View() PlayerView {
	return PlayerView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Age:            u.Age,
		SportInterests: u.Interests(),
	}
}
