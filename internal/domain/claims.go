package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserActive bool   `json:"user_active"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
