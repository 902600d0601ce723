package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// Delete removes an item in any state. Moderators may delete anything; a
// submitter may delete their own item only while it is pending. An event's
// content links are removed first. Bookmarks pointing at the item go too.
func (s *Service) Delete(ctx context.Context, p domain.Principal, itemID uuid.UUID) error {
	if err := access.Check(p, access.Member); err != nil {
		return err
	}

	var (
		kind          domain.ItemKind
		linksGone     int64
		bookmarksGone int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetForUpdate(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := access.CanDelete(p, item); err != nil {
			return err
		}
		kind = item.Kind

		linksGone = 0
		if item.Kind == domain.ItemKindEvent {
			linksGone, err = s.links.DeleteByEvent(txCtx, item.ID)
			if err != nil {
				return fmt.Errorf("delete links: %w", err)
			}
		}

		bookmarksGone, err = s.bookmarks.DeleteByItem(txCtx, item.Kind.Content(), item.ID)
		if err != nil {
			return fmt.Errorf("delete bookmarks: %w", err)
		}

		if err := s.items.Delete(txCtx, item.ID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    p.UserID,
			EntityType: domain.EntityTypeItem,
			EntityID:   item.ID,
			Action:     domain.AuditActionDelete,
			CreatedAt:  s.now(),
			Changes: map[string]any{
				"kind":   item.Kind.String(),
				"status": item.Status.String(),
				"title":  item.Fields.Title,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("submission.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID.String()),
		slog.String("kind", kind.String()),
		slog.Int64("links_removed", linksGone),
		slog.Int64("bookmarks_removed", bookmarksGone),
		slog.String("actor_id", p.UserID.String()),
	)

	return nil
}
