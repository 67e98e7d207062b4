package model

import "time"

// UserProfile carries per-user preferences and a subscription placeholder.
type UserProfile struct {
	UserID       string       `json:"user_id"`
	Preferences  Preferences  `json:"preferences"`
	Subscription Subscription `json:"subscription"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type Preferences struct {
	DefaultTemplate string `json:"default_template,omitempty"`
	VoiceEnabled    bool   `json:"voice_enabled"`
	Language        string `json:"language" validate:"required,bcp47_language_tag"`
}

type Subscription struct {
	Plan      string     `json:"plan"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// DefaultProfile is what a user without a stored profile sees.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:       userID,
		Preferences:  Preferences{Language: "en-US"},
		Subscription: Subscription{Plan: "free"},
	}
}
