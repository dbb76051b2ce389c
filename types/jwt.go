package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims. Name, Email and Role are carried in the
// token so protected handlers never need an account lookup.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
