// Package bookmark toggles a principal's saved references to events,
// sayings, verses and notes.
package bookmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/observability"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

type bookmarkRepo interface {
	Insert(ctx context.Context, b domain.Bookmark) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, itemID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.ContentKind, limit, offset int) ([]domain.Bookmark, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error)
}

type referenceRepo interface {
	Exists(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error)
}

type ledger interface {
	Award(ctx context.Context, userID uuid.UUID, delta int64, reason domain.AwardReason, subjectID uuid.UUID) (*domain.AwardOutcome, error)
	Publish(ctx context.Context, reason domain.AwardReason, outcome *domain.AwardOutcome)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Milestone grants Points once, when a principal's bookmark count first
// reaches Count. A zero Count disables it.
type Milestone struct {
	Count  int
	Points int64
}

// Service implements the bookmark toggle.
type Service struct {
	bookmarks  bookmarkRepo
	items      itemRepo
	references referenceRepo
	ledger     ledger
	tx         txManager
	milestone  Milestone
	metrics    *observability.Metrics
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a bookmark service. ledger may be nil when the
// milestone is disabled; metrics may be nil.
func NewService(
	logger *slog.Logger,
	bookmarks bookmarkRepo,
	items itemRepo,
	references referenceRepo,
	ledger ledger,
	tx txManager,
	milestone Milestone,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		bookmarks:  bookmarks,
		items:      items,
		references: references,
		ledger:     ledger,
		tx:         tx,
		milestone:  milestone,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.With("service", "bookmark"),
	}
}

// Toggle removes the principal's bookmark on (kind, itemID) if it exists and
// adds it otherwise. Only the add path runs the milestone hook. An insert
// that loses a race with a concurrent toggle still reports added.
func (s *Service) Toggle(ctx context.Context, p domain.Principal, kind domain.ContentKind, itemID uuid.UUID) (*domain.ToggleResult, error) {
	if err := access.Check(p, access.Member); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of event, saying, verse, note")
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}

	var result domain.ToggleResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = domain.ToggleResult{}

		removed, err := s.bookmarks.Delete(txCtx, p.UserID, kind, itemID)
		if err != nil {
			return fmt.Errorf("delete bookmark: %w", err)
		}
		if removed {
			result.Action = domain.ToggleRemoved
			return nil
		}

		if err := s.ensureTarget(txCtx, p, kind, itemID); err != nil {
			return err
		}

		inserted, err := s.bookmarks.Insert(txCtx, domain.Bookmark{
			ID:        uuid.New(),
			UserID:    p.UserID,
			Kind:      kind,
			ItemID:    itemID,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("insert bookmark: %w", err)
		}
		result.Action = domain.ToggleAdded
		if !inserted {
			return nil
		}

		result.Award, err = s.onAdded(txCtx, p.UserID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("bookmark.Toggle: %w", err)
	}

	s.metrics.BookmarkToggled(string(result.Action))
	if result.Award != nil {
		s.ledger.Publish(ctx, domain.AwardReasonBookmarkMilestone, result.Award)
	}

	s.log.DebugContext(ctx, "bookmark toggled",
		slog.String("user_id", p.UserID.String()),
		slog.String("kind", kind.String()),
		slog.String("item_id", itemID.String()),
		slog.String("action", string(result.Action)),
	)

	return &result, nil
}

// ensureTarget checks that the bookmarked content exists and, for moderated
// items, that the principal may see it.
func (s *Service) ensureTarget(ctx context.Context, p domain.Principal, kind domain.ContentKind, id uuid.UUID) error {
	if itemKind, ok := kind.Item(); ok {
		item, err := s.items.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.Kind != itemKind || !access.CanView(p, item) {
			return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
		}
		return nil
	}

	refKind, _ := kind.Reference()
	exists, err := s.references.Exists(ctx, refKind, id)
	if err != nil {
		return fmt.Errorf("check reference: %w", err)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// onAdded grants the milestone award when the count has reached it. The
// award ledger keys it on the user, so it is granted once per user even if
// bookmarks are later removed and re-added.
func (s *Service) onAdded(ctx context.Context, userID uuid.UUID) (*domain.AwardOutcome, error) {
	if s.milestone.Count <= 0 || s.ledger == nil {
		return nil, nil
	}

	count, err := s.bookmarks.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookmarks: %w", err)
	}
	if count < s.milestone.Count {
		return nil, nil
	}

	award, err := s.ledger.Award(ctx, userID, s.milestone.Points, domain.AwardReasonBookmarkMilestone, userID)
	if err != nil {
		return nil, fmt.Errorf("award milestone: %w", err)
	}
	if !award.Applied {
		return nil, nil
	}
	return award, nil
}

// List returns the principal's bookmarks, newest first, optionally narrowed
// to one kind.
func (s *Service) List(ctx context.Context, p domain.Principal, kind *domain.ContentKind, limit, offset int) ([]domain.Bookmark, error) {
	if err := access.Check(p, access.Member); err != nil {
		return nil, err
	}
	if kind != nil && !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of event, saying, verse, note")
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	bookmarks, err := s.bookmarks.ListByUser(ctx, p.UserID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("bookmark.List: %w", err)
	}
	return bookmarks, nil
}
