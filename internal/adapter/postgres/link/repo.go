// Package link implements the event to reference link table using PostgreSQL.
package link

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

var linkColumns = []string{"id", "event_id", "linked_kind", "linked_id", "created_by", "created_at"}

// Repo provides content link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new link repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert adds the link unless the (event, kind, linked) triple exists. It
// reports whether a row was written.
func (r *Repo) Insert(ctx context.Context, l domain.ContentLink) (bool, error) {
	query, args, err := postgres.Builder().
		Insert("content_links").
		Columns(linkColumns...).
		Values(l.ID, l.EventID, string(l.LinkedKind), l.LinkedID, l.CreatedBy, l.CreatedAt).
		Suffix("ON CONFLICT (event_id, linked_kind, linked_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build link insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "content_link", l.EventID)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID returns a link by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentLink, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByTriple returns the link for the (event, kind, linked) triple.
func (r *Repo) GetByTriple(ctx context.Context, eventID uuid.UUID, kind domain.ReferenceKind, linkedID uuid.UUID) (*domain.ContentLink, error) {
	return r.getOne(ctx, sq.Eq{"event_id": eventID, "linked_kind": string(kind), "linked_id": linkedID}, linkedID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.ContentLink, error) {
	query, args, err := postgres.Builder().Select(linkColumns...).From("content_links").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build link select: %w", err)
	}

	var row linkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "content_link", key)
	}
	return row.toDomain(), nil
}

// ListByEvent returns the links of an event, oldest first.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.ContentLink, error) {
	query, args, err := postgres.Builder().
		Select(linkColumns...).
		From("content_links").
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build link list: %w", err)
	}

	var rows []linkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	out := make([]domain.ContentLink, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// Delete removes a link by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM content_links WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "content_link", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_link %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByEvent removes every link of an event.
func (r *Repo) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM content_links WHERE event_id = $1`, eventID)
	if err != nil {
		return 0, postgres.MapError(err, "content_link", eventID)
	}
	return tag.RowsAffected(), nil
}

type linkRow struct {
	ID         uuid.UUID `db:"id"`
	EventID    uuid.UUID `db:"event_id"`
	LinkedKind string    `db:"linked_kind"`
	LinkedID   uuid.UUID `db:"linked_id"`
	CreatedBy  uuid.UUID `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row *linkRow) toDomain() *domain.ContentLink {
	return &domain.ContentLink{
		ID:         row.ID,
		EventID:    row.EventID,
		LinkedKind: domain.ReferenceKind(row.LinkedKind),
		LinkedID:   row.LinkedID,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
	}
}
