package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemFields holds the editable content of a moderated item. Title and body
// come in two languages and are opaque to the core.
type ItemFields struct {
	Title    string
	TitleAlt string
	Body     string
	BodyAlt  string

	// Event-only fields.
	EventDate string
	Category  EventCategory
	Latitude  *float64
	Longitude *float64

	// Saying-only field.
	Attribution string
}

// ModeratedItem is a community-submitted event or saying.
//
// Status is approved exactly when ApproverID and ApprovedAt are both set.
type ModeratedItem struct {
	ID          uuid.UUID
	Kind        ItemKind
	Fields      ItemFields
	Status      ItemStatus
	SubmitterID uuid.UUID
	ApproverID  *uuid.UUID
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPending reports whether the item still awaits moderation.
func (i *ModeratedItem) IsPending() bool {
	return i.Status == ItemStatusPending
}

// VisibleTo applies the read-path visibility rule: approved items are public;
// anything else is visible only to its submitter and to moderators.
func (i *ModeratedItem) VisibleTo(p Principal) bool {
	if i.Status == ItemStatusApproved {
		return true
	}
	if p.Is(i.SubmitterID) {
		return true
	}
	return p.EffectiveRole().IsModerator()
}

// ItemFilter narrows an item listing. Viewer is applied as the visibility
// rule; it is never optional.
type ItemFilter struct {
	Kind        *ItemKind
	Status      *ItemStatus
	SubmitterID *uuid.UUID
	Viewer      Principal
	Limit       int
	Offset      int
}

// TransitionResult describes the outcome of an approve or reject call.
// Transitioned is false when the item had already left the pending state,
// in which case Item holds its current state and nothing was written.
type TransitionResult struct {
	Item         *ModeratedItem
	Transitioned bool
	Award        *AwardOutcome
}
