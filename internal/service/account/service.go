package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	LockAdmins(ctx context.Context) ([]uuid.UUID, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookmarkRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type badgeRepo interface {
	DeleteForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type tokenManager interface {
	GenerateAccessToken(p domain.Principal) (string, error)
	ValidateAccessToken(token string) (domain.Principal, error)
	AccessTTL() time.Duration
}

// rankings forgets deleted users. It may be nil.
type rankings interface {
	Forget(ctx context.Context, userID uuid.UUID)
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Service manages accounts: registration, login, roles and deletion.
type Service struct {
	users     userRepo
	bookmarks bookmarkRepo
	badges    badgeRepo
	audit     auditLogger
	tx        txManager
	hasher    passwordHasher
	tokens    tokenManager
	rankings  rankings
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates an account service. rankings may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	bookmarks bookmarkRepo,
	badges badgeRepo,
	audit auditLogger,
	tx txManager,
	hasher passwordHasher,
	tokens tokenManager,
	rankings rankings,
) *Service {
	return &Service{
		users:     users,
		bookmarks: bookmarks,
		badges:    badges,
		audit:     audit,
		tx:        tx,
		hasher:    hasher,
		tokens:    tokens,
		rankings:  rankings,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger.With("service", "account"),
	}
}
