package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims carried by access and refresh tokens.
// TokenVersion must match the user's current version; logout bumps the
// version and invalidates every outstanding token.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	MerchantID   string `json:"merchant_id,omitempty"`
	TokenVersion int    `json:"token_version"`
}
