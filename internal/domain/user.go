package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered principal.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	Points       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal returns the principal acting as this user.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// LeaderboardEntry is a user's position on the reputation leaderboard.
type LeaderboardEntry struct {
	UserID   uuid.UUID
	Username string
	Points   int64
}
