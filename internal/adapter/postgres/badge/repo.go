// Package badge implements the badge catalog and user badge grants.
package badge

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new badge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns the catalog ordered by threshold.
func (r *Repo) List(ctx context.Context) ([]domain.Badge, error) {
	var rows []badgeRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, name, description, points_required FROM badges ORDER BY points_required, name`)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return toBadges(rows), nil
}

// Upsert creates the badge or updates the existing one with the same name.
func (r *Repo) Upsert(ctx context.Context, b domain.Badge) (*domain.Badge, error) {
	query, args, err := postgres.Builder().
		Insert("badges").
		Columns("id", "name", "description", "points_required").
		Values(b.ID, b.Name, b.Description, b.PointsRequired).
		Suffix(`ON CONFLICT (name) DO UPDATE
			SET description = EXCLUDED.description, points_required = EXCLUDED.points_required
			RETURNING id, name, description, points_required`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build badge upsert: %w", err)
	}

	var row badgeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "badge", b.Name)
	}
	out := row.toDomain()
	return &out, nil
}

// GrantEligible grants every badge whose threshold is at most points and that
// userID does not hold yet. It returns only the badges granted by this call;
// a repeated call with the same points returns none.
func (r *Repo) GrantEligible(ctx context.Context, userID uuid.UUID, points int64) ([]domain.Badge, error) {
	var rows []badgeRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, `
		WITH granted AS (
			INSERT INTO user_badges (user_id, badge_id, awarded_at)
			SELECT $1, b.id, now()
			FROM badges b
			WHERE b.points_required <= $2
			ON CONFLICT (user_id, badge_id) DO NOTHING
			RETURNING badge_id
		)
		SELECT b.id, b.name, b.description, b.points_required
		FROM badges b
		JOIN granted g ON g.badge_id = b.id
		ORDER BY b.points_required, b.name`,
		userID, points,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_badges", userID)
	}
	return toBadges(rows), nil
}

// ListForUser returns the badges held by userID, oldest grant first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error) {
	var rows []userBadgeRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, `
		SELECT ub.user_id, ub.awarded_at, b.id, b.name, b.description, b.points_required
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.awarded_at, b.points_required`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user badges: %w", err)
	}

	out := make([]domain.UserBadge, len(rows))
	for i, row := range rows {
		out[i] = domain.UserBadge{
			UserID: row.UserID,
			Badge: domain.Badge{
				ID:             row.ID,
				Name:           row.Name,
				Description:    row.Description,
				PointsRequired: row.PointsRequired,
			},
			AwardedAt: row.AwardedAt,
		}
	}
	return out, nil
}

// DeleteForUser removes every grant held by userID. Only account deletion
// calls it; grants are otherwise permanent.
func (r *Repo) DeleteForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM user_badges WHERE user_id = $1`, userID)
	if err != nil {
		return 0, postgres.MapError(err, "user_badges", userID)
	}
	return tag.RowsAffected(), nil
}

type badgeRow struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	PointsRequired int64     `db:"points_required"`
}

func (row badgeRow) toDomain() domain.Badge {
	return domain.Badge{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		PointsRequired: row.PointsRequired,
	}
}

type userBadgeRow struct {
	UserID         uuid.UUID `db:"user_id"`
	AwardedAt      time.Time `db:"awarded_at"`
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	PointsRequired int64     `db:"points_required"`
}

func toBadges(rows []badgeRow) []domain.Badge {
	out := make([]domain.Badge, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
