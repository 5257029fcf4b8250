package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/pkg/response"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type resendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Signup registers an unverified account and mails a verification code
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, appErr := h.authService.Signup(&req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	response.Created(c, gin.H{
		"user":    user,
		"message": "verification code sent",
	})
}

// Verify activates an account from its one-time code
// POST /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req services.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, appErr := h.authService.Verify(&req, c.ClientIP(), c.Request.UserAgent())
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	response.Success(c, tokenPayload(pair))
}

// ResendCode issues a fresh verification code
// POST /api/auth/resend
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req resendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if appErr := h.authService.ResendOTP(req.Email); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "verification code sent"})
}

// Login authenticates by username or email
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, appErr := h.authService.Login(&req, c.ClientIP(), c.Request.UserAgent())
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	response.Success(c, tokenPayload(pair))
}

// Refresh rotates a refresh token
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, appErr := h.authService.Refresh(req.RefreshToken, c.ClientIP(), c.Request.UserAgent())
	if appErr != nil {
		response.Error(c, appErr)
		return
	}

	response.Success(c, tokenPayload(pair))
}

// Logout revokes the refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshTokenRequest
	// Missing token is still a successful logout.
	_ = c.ShouldBindJSON(&req)

	if appErr := h.authService.RevokeRefreshToken(req.RefreshToken); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, gin.H{"message": "logged out"})
}

// Me returns the current logged-in user
// GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, appErr := h.authService.GetUserByID(middleware.GetUserID(c))
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, user)
}

// UpdateAccount edits account fields
// PUT /api/users/me
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	var req services.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, appErr := h.authService.UpdateAccount(middleware.GetUserID(c), &req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Success(c, user)
}

func tokenPayload(pair *services.TokenPair) gin.H {
	return gin.H{
		"token":             pair.AccessToken,
		"expire_at":         pair.AccessExpireAt,
		"refresh_token":     pair.RefreshToken,
		"refresh_expire_at": pair.RefreshExpireAt,
		"user":              pair.User,
	}
}
