package reputation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/observability"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddPoints(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	TopByPoints(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type badgeRepo interface {
	List(ctx context.Context) ([]domain.Badge, error)
	Upsert(ctx context.Context, b domain.Badge) (*domain.Badge, error)
	GrantEligible(ctx context.Context, userID uuid.UUID, points int64) ([]domain.Badge, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error)
}

type awardRepo interface {
	Insert(ctx context.Context, a domain.PointAward) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PointAward, error)
}

// leaderboardCache mirrors point totals outside the database. It may be nil.
type leaderboardCache interface {
	Set(ctx context.Context, e domain.LeaderboardEntry) error
	Top(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
	Remove(ctx context.Context, userID uuid.UUID) error
	Rebuild(ctx context.Context, entries []domain.LeaderboardEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
	defaultHistoryLimit    = 50
	maxHistoryLimit        = 200

	// RebuildSize is how many users a leaderboard rebuild mirrors.
	RebuildSize = 1000
)

// Service keeps the points ledger and unlocks badges.
type Service struct {
	users   userRepo
	badges  badgeRepo
	awards  awardRepo
	cache   leaderboardCache
	tx      txManager
	metrics *observability.Metrics
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a reputation service. cache and metrics may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	badges badgeRepo,
	awards awardRepo,
	cache leaderboardCache,
	tx txManager,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		users:   users,
		badges:  badges,
		awards:  awards,
		cache:   cache,
		tx:      tx,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
		log:     logger.With("service", "reputation"),
	}
}
