package domain

import (
	"time"

	"github.com/google/uuid"
)

// LopCharacter is the companion character a user picks during onboarding.
type LopCharacter string

const (
	LopHappy   LopCharacter = "happy_lop"
	LopSleepy  LopCharacter = "sleepy_lop"
	LopCurious LopCharacter = "curious_lop"
	LopZen     LopCharacter = "zen_lop"
	LopPlayful LopCharacter = "playful_lop"
)

func (c LopCharacter) String() string { return string(c) }

func (c LopCharacter) IsValid() bool {
	switch c {
	case LopHappy, LopSleepy, LopCurious, LopZen, LopPlayful:
		return true
	}
	return false
}

// User is a registered Solilop account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	LopCharacter LopCharacter
	CreatedAt    time.Time
}

// Session is the server-side record backing an issued bearer token.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
