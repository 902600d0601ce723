package domain

import (
	"time"

	"github.com/google/uuid"
)

// Badge is a catalog entry unlocked once a principal's points reach
// PointsRequired.
type Badge struct {
	ID             uuid.UUID
	Name           string
	Description    string
	PointsRequired int64
}

// UserBadge records that a badge was granted. It is never revoked.
type UserBadge struct {
	UserID    uuid.UUID
	Badge     Badge
	AwardedAt time.Time
}

// PointAward is one row of the points ledger. (UserID, Reason, SubjectID) is
// unique, so a given award can be granted at most once.
type PointAward struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Delta     int64
	Reason    AwardReason
	SubjectID uuid.UUID
	CreatedAt time.Time
}

// AwardOutcome is the result of adding points. Applied is false when the
// same award had already been recorded.
type AwardOutcome struct {
	UserID    uuid.UUID
	Applied   bool
	Delta     int64
	Total     int64
	NewBadges []Badge
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
