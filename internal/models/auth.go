package models

import "github.com/golang-jwt/jwt/v5"

// AccountRole distinguishes the two account kinds sharing the auth flow.
type AccountRole string

const (
	RoleStudent    AccountRole = "STUDENT"
	RoleSupervisor AccountRole = "SUPERVISOR"
)

// JWTClaims is the session token payload.
type JWTClaims struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Role     AccountRole `json:"role"`
	jwt.RegisteredClaims
}
