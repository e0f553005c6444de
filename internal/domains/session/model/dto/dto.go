package dto

import (
	"time"

	"saapadu/infras/jwt"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (l *LoginResponse) FromToken(token *jwt.Token) {
	l.AccessToken = token.Value
	l.TokenType = "Bearer"
	l.ExpiresIn = int64(token.TTL / time.Second)
	l.ExpiresAt = token.ExpiresAt
}

type StatusResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
}
