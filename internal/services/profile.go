package services

import (
	"errors"

	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type CreateProfileRequest struct {
	Age            int            `json:"age" binding:"required,min=13,max=120"`
	DisplayPicture string         `json:"display_picture" binding:"omitempty,max=500"`
	SportInterests map[string]int `json:"sport_interests"`
}

type UpdateProfileRequest struct {
	Age            *int           `json:"age" binding:"omitempty,min=13,max=120"`
	DisplayPicture *string        `json:"display_picture" binding:"omitempty,max=500"`
	SportInterests map[string]int `json:"sport_interests"`
}

// ProfileView is the caller's own profile.
type ProfileView struct {
	ID             uint           `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Age            *int           `json:"age,omitempty"`
	DisplayPicture string         `json:"display_picture,omitempty"`
	SportInterests map[string]int `json:"sport_interests"`
}

// Check reports whether the profile-creation step has run for the user.
func (s *ProfileService) Check(userID uint) (bool, *response.AppError) {
	user, appErr := s.load(userID)
	if appErr != nil {
		return false, appErr
	}
	return user.HasProfile(), nil
}

// Create fills in the one-shot profile. A second create is a conflict; use
// update instead.
func (s *ProfileService) Create(userID uint, req *CreateProfileRequest) (*ProfileView, *response.AppError) {
	user, appErr := s.load(userID)
	if appErr != nil {
		return nil, appErr
	}
	if user.HasProfile() {
		return nil, response.NewConflict("profile already exists")
	}

	if appErr := validateInterests(req.SportInterests); appErr != nil {
		return nil, appErr
	}

	age := req.Age
	user.Age = &age
	user.DisplayPicture = req.DisplayPicture
	if req.SportInterests != nil {
		if err := user.SetInterests(req.SportInterests); err != nil {
			return nil, response.NewServerError("failed to encode interests")
		}
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, response.NewServerError("failed to save profile")
	}
	return profileView(user), nil
}

// Get returns the caller's profile.
func (s *ProfileService) Get(userID uint) (*ProfileView, *response.AppError) {
	user, appErr := s.load(userID)
	if appErr != nil {
		return nil, appErr
	}
	return profileView(user), nil
}

// Update changes profile fields. Omitted fields are untouched.
func (s *ProfileService) Update(userID uint, req *UpdateProfileRequest) (*ProfileView, *response.AppError) {
	user, appErr := s.load(userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.SportInterests != nil {
		if appErr := validateInterests(req.SportInterests); appErr != nil {
			return nil, appErr
		}
		if err := user.SetInterests(req.SportInterests); err != nil {
			return nil, response.NewServerError("failed to encode interests")
		}
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.DisplayPicture != nil {
		user.DisplayPicture = *req.DisplayPicture
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, response.NewServerError("failed to save profile")
	}
	return profileView(user), nil
}

func (s *ProfileService) load(userID uint) (*models.User, *response.AppError) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, response.NewServerError("database error")
	}
	return &user, nil
}

// validateInterests checks each entry against the sport enumeration and the
// 1-4 skill scale.
func validateInterests(interests map[string]int) *response.AppError {
	for sport, level := range interests {
		if !models.ValidSport(sport) {
			return response.NewValidation("unknown sport: " + sport)
		}
		if level < 1 || level > 4 {
			return response.NewValidation("skill level must be between 1 and 4")
		}
	}
	return nil
}

func profileView(u *models.User) *ProfileView {
	return &ProfileView{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Name:           u.Name,
		Age:            u.Age,
		DisplayPicture: u.DisplayPicture,
		SportInterests: u.Interests(),
	}
}
