// Package award implements the points ledger using PostgreSQL.
package award

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Repo provides point award persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new award repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert records the award unless (user, reason, subject) was already
// recorded. It reports whether a row was written.
func (r *Repo) Insert(ctx context.Context, a domain.PointAward) (bool, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert("point_awards").
		Columns("id", "user_id", "delta", "reason", "subject_id", "created_at").
		Values(a.ID, a.UserID, a.Delta, string(a.Reason), a.SubjectID, a.CreatedAt).
		Suffix("ON CONFLICT (user_id, reason, subject_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build award insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "point_award", a.UserID)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns userID's awards, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PointAward, error) {
	var rows []awardRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, `
		SELECT id, user_id, delta, reason, subject_id, created_at
		FROM point_awards
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	out := make([]domain.PointAward, len(rows))
	for i, row := range rows {
		out[i] = domain.PointAward{
			ID:        row.ID,
			UserID:    row.UserID,
			Delta:     row.Delta,
			Reason:    domain.AwardReason(row.Reason),
			SubjectID: row.SubjectID,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

type awardRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Delta     int64     `db:"delta"`
	Reason    string    `db:"reason"`
	SubjectID uuid.UUID `db:"subject_id"`
	CreatedAt time.Time `db:"created_at"`
}
