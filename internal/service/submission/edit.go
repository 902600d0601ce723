package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// Edit changes an item's content. Status and approval are never touched.
// Allowed for the submitter and for ulama or above.
func (s *Service) Edit(ctx context.Context, p domain.Principal, input EditInput) (*domain.ModeratedItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.ModeratedItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := access.CanEdit(p, item); err != nil {
			return err
		}

		fields := input.apply(item.Fields)
		if errs := validateFields(item.Kind, fields); len(errs) > 0 {
			return domain.NewValidationErrors(errs)
		}

		updated, err = s.items.UpdateFields(txCtx, item.ID, fields)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeItem,
			EntityID:   item.ID,
			Action:     domain.AuditActionUpdate,
			CreatedAt:  s.now(),
			Changes:    fieldChanges(item.Fields, fields),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Edit: %w", err)
	}

	s.log.InfoContext(ctx, "item edited",
		slog.String("item_id", input.ItemID.String()),
		slog.String("editor_id", p.UserID.String()),
	)

	return updated, nil
}

// fieldChanges lists the changed fields as {"old": ..., "new": ...} pairs.
func fieldChanges(before, after domain.ItemFields) map[string]any {
	changes := map[string]any{}
	diff := func(name string, was, now any) {
		if was != now {
			changes[name] = map[string]any{"old": was, "new": now}
		}
	}

	diff("title", before.Title, after.Title)
	diff("title_alt", before.TitleAlt, after.TitleAlt)
	diff("body", before.Body, after.Body)
	diff("body_alt", before.BodyAlt, after.BodyAlt)
	diff("event_date", before.EventDate, after.EventDate)
	diff("category", before.Category.String(), after.Category.String())
	diff("latitude", floatOrNil(before.Latitude), floatOrNil(after.Latitude))
	diff("longitude", floatOrNil(before.Longitude), floatOrNil(after.Longitude))
	diff("attribution", before.Attribution, after.Attribution)

	return changes
}

func floatOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
