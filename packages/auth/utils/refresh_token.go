package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"clubmanager-api/packages/auth/models"

	"gorm.io/gorm"
)

const (
	// RefreshTokenTTL is the lifetime of refresh tokens.
	RefreshTokenTTL = 7 * 24 * time.Hour

	refreshTokenBytes = 32
)

// GenerateRefreshToken creates a random refresh token, stores it and returns it.
func GenerateRefreshToken(db *gorm.DB, userID uint) (*models.RefreshToken, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	refreshToken := &models.RefreshToken{
		UserID:    userID,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}

	if err := db.Create(refreshToken).Error; err != nil {
		return nil, err
	}

	return refreshToken, nil
}

// GenerateTokenPair issues a fresh access/refresh token pair for the user.
func GenerateTokenPair(db *gorm.DB, user models.User) (*models.TokenResponse, error) {
	accessToken, err := GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := GenerateRefreshToken(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// ValidateRefreshToken looks up the refresh token and returns its user. Expired
// tokens are revoked on sight.
func ValidateRefreshToken(db *gorm.DB, token string) (*models.User, error) {
	var refreshToken models.RefreshToken
	if err := db.Where("token = ?", token).Preload("User").First(&refreshToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid refresh token")
		}
		return nil, err
	}

	if refreshToken.IsExpired() {
		db.Delete(&refreshToken)
		return nil, errors.New("refresh token expired")
	}

	return &refreshToken.User, nil
}

// RevokeRefreshToken deletes a single refresh token.
func RevokeRefreshToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

// RevokeAllUserTokens deletes every refresh token of a user (logout everywhere).
func RevokeAllUserTokens(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
