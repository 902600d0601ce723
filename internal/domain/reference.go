package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceItem is an entry of a static corpus (a verse or a cross-reference
// note). It is loaded by an external job and never mutated here.
type ReferenceItem struct {
	ID        uuid.UUID
	Kind      ReferenceKind
	RefKey    string
	Text      string
	TextAlt   string
	CreatedAt time.Time
}

// ContentLink connects a curated event to a reference item.
type ContentLink struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	LinkedKind ReferenceKind
	LinkedID   uuid.UUID
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// LinkResult is returned by a link request. Created is false when the pair
// was already linked; Link then holds the existing row.
type LinkResult struct {
	Link    *ContentLink
	Created bool
}

// Bookmark is a principal's saved reference to any content kind.
type Bookmark struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      ContentKind
	ItemID    uuid.UUID
	CreatedAt time.Time
}

// ToggleAction is the effect of a bookmark toggle.
type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

// ToggleResult describes the outcome of a bookmark toggle.
type ToggleResult struct {
	Action ToggleAction
	Award  *AwardOutcome
}
