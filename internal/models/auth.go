package models

import "github.com/golang-jwt/jwt/v5"

// Roles carried in session tokens.
const (
	RoleWarden = "warden"
	RoleGuard  = "guard"
)

// WardenLoginRequest is the warden login payload.
type WardenLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GuardLoginRequest is the guard login payload.
type GuardLoginRequest struct {
	PIN string `json:"pin" validate:"required"`
}

// LoginResponse carries the issued session token. Legacy clients ignore it
// and key off the message alone.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
}

// JWTClaims are the session token claims.
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
