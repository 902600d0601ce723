// Package bookmark implements bookmark persistence using PostgreSQL.
package bookmark

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

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new bookmark repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert adds the bookmark unless the (user, kind, item) triple is already
// present. It reports whether a row was written.
func (r *Repo) Insert(ctx context.Context, b domain.Bookmark) (bool, error) {
	query, args, err := postgres.Builder().
		Insert("bookmarks").
		Columns("id", "user_id", "item_kind", "item_id", "created_at").
		Values(b.ID, b.UserID, string(b.Kind), b.ItemID, b.CreatedAt).
		Suffix("ON CONFLICT (user_id, item_kind, item_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build bookmark insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "bookmark", b.ItemID)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the triple and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, itemID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND item_kind = $2 AND item_id = $3`,
		userID, string(kind), itemID,
	)
	if err != nil {
		return false, postgres.MapError(err, "bookmark", itemID)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByItem removes every bookmark pointing at the item.
func (r *Repo) DeleteByItem(ctx context.Context, kind domain.ContentKind, itemID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM bookmarks WHERE item_kind = $1 AND item_id = $2`,
		string(kind), itemID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "bookmark", itemID)
	}
	return tag.RowsAffected(), nil
}

// DeleteByUser removes every bookmark owned by userID.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, postgres.MapError(err, "bookmark", userID)
	}
	return tag.RowsAffected(), nil
}

// CountByUser returns how many bookmarks userID holds.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM bookmarks WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}

// ListByUser returns userID's bookmarks, newest first, optionally narrowed to one kind.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.ContentKind, limit, offset int) ([]domain.Bookmark, error) {
	where := sq.Eq{"user_id": userID}
	if kind != nil {
		where["item_kind"] = string(*kind)
	}

	query, args, err := postgres.Builder().
		Select("id", "user_id", "item_kind", "item_id", "created_at").
		From("bookmarks").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookmark list: %w", err)
	}

	var rows []bookmarkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	out := make([]domain.Bookmark, len(rows))
	for i, row := range rows {
		out[i] = domain.Bookmark{
			ID:        row.ID,
			UserID:    row.UserID,
			Kind:      domain.ContentKind(row.ItemKind),
			ItemID:    row.ItemID,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

type bookmarkRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ItemKind  string    `db:"item_kind"`
	ItemID    uuid.UUID `db:"item_id"`
	CreatedAt time.Time `db:"created_at"`
}
