package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// Get returns an item the principal may see. Items hidden from the
// principal are reported as not found.
func (s *Service) Get(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.ModeratedItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("submission.Get: %w", err)
	}
	if !access.CanView(p, item) {
		return nil, fmt.Errorf("submission.Get: item %s: %w", itemID, domain.ErrNotFound)
	}
	return item, nil
}

// List returns the items matching input that the principal may see, with the
// total number of matches.
func (s *Service) List(ctx context.Context, p domain.Principal, input ListInput) ([]domain.ModeratedItem, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.items.List(ctx, domain.ItemFilter{
		Kind:        input.Kind,
		Status:      input.Status,
		SubmitterID: input.SubmitterID,
		Viewer:      p,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("submission.List: %w", err)
	}
	return items, total, nil
}

// ListPending returns the moderation queue, optionally narrowed to one kind.
func (s *Service) ListPending(ctx context.Context, p domain.Principal, kind *domain.ItemKind, limit, offset int) ([]domain.ModeratedItem, int, error) {
	if err := access.Check(p, access.Moderator); err != nil {
		return nil, 0, err
	}

	pending := domain.ItemStatusPending
	return s.List(ctx, p, ListInput{Kind: kind, Status: &pending, Limit: limit, Offset: offset})
}

// History returns the audit trail of an item, newest first. Moderators only.
// The trail outlives the item, so a deleted item still has a history.
func (s *Service) History(ctx context.Context, p domain.Principal, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if err := access.Check(p, access.Moderator); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > maxListLimit {
		limit = defaultHistoryLimit
	}

	records, err := s.audit.ListByEntity(ctx, domain.EntityTypeItem, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("submission.History: %w", err)
	}
	if len(records) == 0 {
		if _, err := s.items.GetByID(ctx, itemID); err != nil {
			return nil, fmt.Errorf("submission.History: %w", err)
		}
	}
	return records, nil
}
