package model

import "github.com/google/uuid"

type OTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	Profile     *Profile `json:"profile"`
}

// TokenClaims is the decoded identity attached to an authenticated request.
type TokenClaims struct {
	UserID uuid.UUID   `json:"user_id"`
	Phone  string      `json:"phone"`
	Role   ProfileRole `json:"role"`
}
