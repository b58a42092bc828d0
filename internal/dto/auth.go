package dto

import "time"

// LoginRequest carries the single journal password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionUser is the static identity carried by every session.
type SessionUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionResponse describes the caller's current session.
type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}
