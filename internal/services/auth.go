package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/sportsmatch/backend/internal/config"
	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/internal/utils"
	"github.com/sportsmatch/backend/pkg/logger"
	"github.com/sportsmatch/backend/pkg/response"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
	email     *EmailService
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig, email *EmailService) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg, email: email}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=100"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type LoginRequest struct {
	// Identity is a username or an email address.
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateAccountRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	CurrentPassword string `json:"current_password"`
}

type TokenPair struct {
	AccessToken     string
	AccessExpireAt  time.Time
	RefreshToken    string
	RefreshExpireAt time.Time
	User            *models.User
}

// Signup registers an unverified account and mails a one-time code. The email
// is stored lower-cased so membership lookups match regardless of input case.
func (s *AuthService) Signup(req *SignupRequest) (*models.User, *response.AppError) {
	email := normalizeEmail(req.Email)

	var count int64
	s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, email).
		Count(&count)
	if count > 0 {
		return nil, response.NewConflict("username or email already taken")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, response.NewServerError("failed to hash password")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, response.NewServerError("failed to generate verification code")
	}

	expires := time.Now().Add(otpTTL)
	user := models.User{
		Username:     req.Username,
		Email:        email,
		Password:     hashed,
		Name:         req.Name,
		Verified:     false,
		OTPCode:      code,
		OTPExpiresAt: &expires,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, response.NewServerError("failed to create user")
	}

	// Mail failures don't fail the signup; the code can be re-requested.
	if err := s.email.SendOTP(user.Email, user.Name, code); err != nil {
		logger.Warnf("failed to queue OTP mail for %s: %v", user.Email, err)
	}

	return &user, nil
}

// ResendOTP issues a fresh code for an unverified account.
func (s *AuthService) ResendOTP(email string) *response.AppError {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("user not found")
		}
		return response.NewServerError("database error")
	}
	if user.Verified {
		return response.NewConflict("account already verified")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return response.NewServerError("failed to generate verification code")
	}
	expires := time.Now().Add(otpTTL)
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"otp_code":       code,
		"otp_expires_at": expires,
	}).Error; err != nil {
		return response.NewServerError("failed to store verification code")
	}

	if err := s.email.SendOTP(user.Email, user.Name, code); err != nil {
		logger.Warnf("failed to queue OTP mail for %s: %v", user.Email, err)
	}
	return nil
}

// Verify activates an account from its one-time code and logs the user in.
func (s *AuthService) Verify(req *VerifyRequest, clientIP, userAgent string) (*TokenPair, *response.AppError) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, response.NewServerError("database error")
	}

	if user.Verified {
		return nil, response.NewConflict("account already verified")
	}
	if user.OTPCode == "" || user.OTPCode != req.Code {
		return nil, response.NewValidation("invalid verification code")
	}
	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return nil, response.NewValidation("verification code expired")
	}

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"verified":       true,
		"otp_code":       "",
		"otp_expires_at": nil,
	}).Error; err != nil {
		return nil, response.NewServerError("failed to verify account")
	}
	user.Verified = true

	return s.issueTokens(&user, clientIP, userAgent)
}

// Login authenticates by username or email. Only verified accounts can log in.
func (s *AuthService) Login(req *LoginRequest, clientIP, userAgent string) (*TokenPair, *response.AppError) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", req.Identity, normalizeEmail(req.Identity)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid credentials")
		}
		return nil, response.NewServerError("database error")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid credentials")
	}
	if !user.Verified {
		return nil, response.NewForbidden("account not verified")
	}

	return s.issueTokens(&user, clientIP, userAgent)
}

func (s *AuthService) issueTokens(user *models.User, clientIP, userAgent string) (*TokenPair, *response.AppError) {
	accessHours := s.jwtConfig.ExpireHour
	refreshHours := s.jwtConfig.RefreshExpireHour

	token, err := utils.GenerateToken(user.ID, user.Username, user.Email, accessHours)
	if err != nil {
		return nil, response.NewServerError("failed to generate token")
	}

	refreshToken, refreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, response.NewServerError("failed to generate refresh token")
	}

	refreshExpireAt := time.Now().Add(time.Duration(refreshHours) * time.Hour)
	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		ExpiresAt: refreshExpireAt,
	}
	if clientIP != "" {
		record.CreatedByIP = clientIP
	}
	if userAgent != "" {
		record.UserAgent = userAgent
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, response.NewServerError("failed to store refresh token")
	}

	return &TokenPair{
		AccessToken:     token,
		AccessExpireAt:  time.Now().Add(time.Duration(accessHours) * time.Hour),
		RefreshToken:    refreshToken,
		RefreshExpireAt: refreshExpireAt,
		User:            user,
	}, nil
}

// Refresh rotates a refresh token: the old one is revoked and linked to its
// replacement inside one transaction.
func (s *AuthService) Refresh(refreshToken, clientIP, userAgent string) (*TokenPair, *response.AppError) {
	if refreshToken == "" {
		return nil, response.NewValidation("refresh token required")
	}

	hash := hashRefreshToken(refreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ?", hash).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid refresh token")
		}
		return nil, response.NewServerError("database error")
	}

	if stored.RevokedAt != nil {
		return nil, response.NewUnauthorized("refresh token revoked")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, response.NewUnauthorized("refresh token expired")
	}

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		return nil, response.NewUnauthorized("user not found")
	}
	if !user.Verified {
		return nil, response.NewForbidden("account not verified")
	}

	accessHours := s.jwtConfig.ExpireHour
	refreshHours := s.jwtConfig.RefreshExpireHour

	newAccessToken, err := utils.GenerateToken(user.ID, user.Username, user.Email, accessHours)
	if err != nil {
		return nil, response.NewServerError("failed to generate token")
	}

	newRefreshToken, newRefreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, response.NewServerError("failed to generate refresh token")
	}

	now := time.Now()
	newRecord := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: newRefreshHash,
		ExpiresAt: now.Add(time.Duration(refreshHours) * time.Hour),
	}
	if clientIP != "" {
		newRecord.CreatedByIP = clientIP
	}
	if userAgent != "" {
		newRecord.UserAgent = userAgent
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRecord).Error; err != nil {
			return err
		}
		// Conditional update: lose the race, lose the rotation.
		res := tx.Model(&models.RefreshToken{}).
			Where("id = ? AND revoked_at IS NULL", stored.ID).
			Updates(map[string]interface{}{
				"revoked_at":           now,
				"replaced_by_token_id": newRecord.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("refresh token already rotated")
		}
		return nil
	}); err != nil {
		return nil, response.NewUnauthorized("invalid refresh token")
	}

	return &TokenPair{
		AccessToken:     newAccessToken,
		AccessExpireAt:  time.Now().Add(time.Duration(accessHours) * time.Hour),
		RefreshToken:    newRefreshToken,
		RefreshExpireAt: newRecord.ExpiresAt,
		User:            &user,
	}, nil
}

// RevokeRefreshToken revokes a refresh token on logout. Unknown tokens are a
// no-op.
func (s *AuthService) RevokeRefreshToken(refreshToken string) *response.AppError {
	if refreshToken == "" {
		return nil
	}

	hash := hashRefreshToken(refreshToken)
	now := time.Now()
	if err := s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error; err != nil {
		return response.NewServerError("failed to revoke token")
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id uint) (*models.User, *response.AppError) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, response.NewServerError("database error")
	}
	return &user, nil
}

// UpdateAccount updates account fields. Changing the email or password
// requires the current password.
func (s *AuthService) UpdateAccount(userID uint, req *UpdateAccountRequest) (*models.User, *response.AppError) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, response.NewServerError("database error")
	}

	updates := make(map[string]interface{})

	if req.Name != "" && req.Name != user.Name {
		updates["name"] = req.Name
	}

	if req.Username != "" && req.Username != user.Username {
		var count int64
		s.db.Model(&models.User{}).
			Where("username = ? AND id <> ?", req.Username, userID).
			Count(&count)
		if count > 0 {
			return nil, response.NewConflict("username already taken")
		}
		updates["username"] = req.Username
	}

	if newEmail := normalizeEmail(req.Email); newEmail != "" && newEmail != user.Email {
		if req.CurrentPassword == "" || !utils.CheckPassword(req.CurrentPassword, user.Password) {
			return nil, response.NewUnauthorized("current password required to change email")
		}
		var count int64
		s.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", newEmail, userID).
			Count(&count)
		if count > 0 {
			return nil, response.NewConflict("email already taken")
		}
		updates["email"] = newEmail
	}

	if req.Password != "" {
		if req.CurrentPassword == "" || !utils.CheckPassword(req.CurrentPassword, user.Password) {
			return nil, response.NewUnauthorized("current password required to change password")
		}
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, response.NewServerError("failed to hash password")
		}
		updates["password"] = hashed
	}

	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, response.NewServerError("failed to update account")
	}

	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, response.NewServerError("database error")
	}
	return &user, nil
}

func generateRefreshToken() (token string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err = rand.Read(randomBytes); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(randomBytes)
	tokenHash = hashRefreshToken(token)
	return token, tokenHash, nil
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
