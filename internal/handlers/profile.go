package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/pkg/response"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Check reports whether the profile-creation step has run
// GET /api/profile/check
func (h *ProfileHandler) Check(c *gin.Context) {
	exists, appErr := h.profileService.Check(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"profile_exists": exists})
}

// Create fills in the one-shot profile
// POST /api/profile
func (h *ProfileHandler) Create(c *gin.Context) {
	var req services.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.profileService.Create(middleware.GetUserID(c), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Created(c, view)
}

// Get returns the caller's profile
// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	view, appErr := h.profileService.Get(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}

// Update changes profile fields
// PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, appErr := h.profileService.Update(middleware.GetUserID(c), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, view)
}
