// Package reference provides read access to the static reference corpora.
// Rows are loaded by an external job; nothing here writes them.
package reference

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Repo provides reference item lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the reference item of kind with the given id.
func (r *Repo) Get(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error) {
	query, args, err := postgres.Builder().
		Select("id", "kind", "ref_key", "text", "text_alt", "created_at").
		From("reference_items").
		Where(sq.Eq{"id": id, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reference select: %w", err)
	}

	var row referenceRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "reference "+string(kind), id)
	}

	return &domain.ReferenceItem{
		ID:        row.ID,
		Kind:      domain.ReferenceKind(row.Kind),
		RefKey:    row.RefKey,
		Text:      row.Text,
		TextAlt:   row.TextAlt,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Exists reports whether a reference item of kind with the given id exists.
func (r *Repo) Exists(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reference_items WHERE id = $1 AND kind = $2)`,
		id, string(kind),
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "reference "+string(kind), id)
	}
	return exists, nil
}

type referenceRow struct {
	ID        uuid.UUID `db:"id"`
	Kind      string    `db:"kind"`
	RefKey    string    `db:"ref_key"`
	Text      string    `db:"text"`
	TextAlt   string    `db:"text_alt"`
	CreatedAt time.Time `db:"created_at"`
}
