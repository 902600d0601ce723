package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/observability"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.ModeratedItem, int, error)
	Create(ctx context.Context, it *domain.ModeratedItem) (*domain.ModeratedItem, error)
	UpdateFields(ctx context.Context, id uuid.UUID, f domain.ItemFields) (*domain.ModeratedItem, error)
	Transition(ctx context.Context, id uuid.UUID, status domain.ItemStatus, moderatorID uuid.UUID, at time.Time) (*domain.ModeratedItem, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type linkRepo interface {
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}

type bookmarkRepo interface {
	DeleteByItem(ctx context.Context, kind domain.ContentKind, itemID uuid.UUID) (int64, error)
}

type auditLog interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type ledger interface {
	Award(ctx context.Context, userID uuid.UUID, delta int64, reason domain.AwardReason, subjectID uuid.UUID) (*domain.AwardOutcome, error)
	Publish(ctx context.Context, reason domain.AwardReason, outcome *domain.AwardOutcome)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit    = 20
	maxListLimit        = 100
	defaultHistoryLimit = 50
)

// Points is the reward for an approved item, per kind.
type Points struct {
	Event  int64
	Saying int64
}

// For returns the point value of kind.
func (p Points) For(kind domain.ItemKind) int64 {
	switch kind {
	case domain.ItemKindEvent:
		return p.Event
	case domain.ItemKindSaying:
		return p.Saying
	}
	return 0
}

// Service runs the moderation workflow for events and sayings.
type Service struct {
	items     itemRepo
	links     linkRepo
	bookmarks bookmarkRepo
	audit     auditLog
	ledger    ledger
	tx        txManager
	points    Points
	metrics   *observability.Metrics
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a submission service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	links linkRepo,
	bookmarks bookmarkRepo,
	audit auditLog,
	ledger ledger,
	tx txManager,
	points Points,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		items:     items,
		links:     links,
		bookmarks: bookmarks,
		audit:     audit,
		ledger:    ledger,
		tx:        tx,
		points:    points,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger.With("service", "submission"),
	}
}
