// Package item implements the moderated item repository using PostgreSQL.
package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tarikh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

var itemColumns = []string{
	"id", "kind", "title", "title_alt", "body", "body_alt",
	"event_date", "category", "latitude", "longitude", "attribution",
	"status", "submitter_id", "approver_id", "approved_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(itemColumns, ", ")

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an item regardless of status. Visibility is the caller's concern.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate is GetByID that also locks the row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ModeratedItem, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock string) (*domain.ModeratedItem, error) {
	b := postgres.Builder().
		Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": id})
	if lock != "" {
		b = b.Suffix(lock)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item select: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return row.toDomain(), nil
}

// List returns the items matching filter that filter.Viewer may see, newest
// first, with the total count of matches.
func (r *Repo) List(ctx context.Context, filter domain.ItemFilter) ([]domain.ModeratedItem, int, error) {
	where := sq.And{visibleTo(filter.Viewer)}
	if filter.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*filter.Kind)})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}
	if filter.SubmitterID != nil {
		where = append(where, sq.Eq{"submitter_id": *filter.SubmitterID})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build item count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(itemColumns...).
		From("items").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build item list: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.ModeratedItem, len(rows))
	for i := range rows {
		items[i] = *rows[i].toDomain()
	}
	return items, total, nil
}

// visibleTo is the SQL form of ModeratedItem.VisibleTo.
func visibleTo(p domain.Principal) sq.Sqlizer {
	if p.EffectiveRole().IsModerator() {
		return sq.Expr("TRUE")
	}
	if p.IsAnonymous() {
		return sq.Eq{"status": string(domain.ItemStatusApproved)}
	}
	return sq.Or{
		sq.Eq{"status": string(domain.ItemStatusApproved)},
		sq.Eq{"submitter_id": p.UserID},
	}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new item.
func (r *Repo) Create(ctx context.Context, it *domain.ModeratedItem) (*domain.ModeratedItem, error) {
	f := it.Fields
	query, args, err := postgres.Builder().
		Insert("items").
		Columns(itemColumns...).
		Values(
			it.ID, string(it.Kind), f.Title, f.TitleAlt, f.Body, f.BodyAlt,
			nullString(f.EventDate), nullString(string(f.Category)), f.Latitude, f.Longitude, nullString(f.Attribution),
			string(it.Status), it.SubmitterID, it.ApproverID, it.ApprovedAt, it.CreatedAt, it.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item insert: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return row.toDomain(), nil
}

// UpdateFields replaces the content fields. Status and approval are untouched.
func (r *Repo) UpdateFields(ctx context.Context, id uuid.UUID, f domain.ItemFields) (*domain.ModeratedItem, error) {
	query, args, err := postgres.Builder().
		Update("items").
		SetMap(map[string]any{
			"title":       f.Title,
			"title_alt":   f.TitleAlt,
			"body":        f.Body,
			"body_alt":    f.BodyAlt,
			"event_date":  nullString(f.EventDate),
			"category":    nullString(string(f.Category)),
			"latitude":    f.Latitude,
			"longitude":   f.Longitude,
			"attribution": nullString(f.Attribution),
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item update: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return row.toDomain(), nil
}

// Transition moves a pending item to status in a single guarded UPDATE.
// It reports false, with a nil item, when the item was not pending (or did
// not exist); exactly one of any number of concurrent callers sees true.
// Approval stamps moderatorID and at; rejection leaves both unset.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, status domain.ItemStatus, moderatorID uuid.UUID, at time.Time) (*domain.ModeratedItem, bool, error) {
	b := postgres.Builder().
		Update("items").
		Set("status", string(status)).
		Set("updated_at", at)
	if status == domain.ItemStatusApproved {
		b = b.Set("approver_id", moderatorID).Set("approved_at", at)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "status": string(domain.ItemStatusPending)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build item transition: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		mapped := postgres.MapError(err, "item", id)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, mapped
	}
	return row.toDomain(), true, nil
}

// Delete removes the item. Its content links go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type itemRow struct {
	ID          uuid.UUID  `db:"id"`
	Kind        string     `db:"kind"`
	Title       string     `db:"title"`
	TitleAlt    string     `db:"title_alt"`
	Body        string     `db:"body"`
	BodyAlt     string     `db:"body_alt"`
	EventDate   *string    `db:"event_date"`
	Category    *string    `db:"category"`
	Latitude    *float64   `db:"latitude"`
	Longitude   *float64   `db:"longitude"`
	Attribution *string    `db:"attribution"`
	Status      string     `db:"status"`
	SubmitterID uuid.UUID  `db:"submitter_id"`
	ApproverID  *uuid.UUID `db:"approver_id"`
	ApprovedAt  *time.Time `db:"approved_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (row *itemRow) toDomain() *domain.ModeratedItem {
	return &domain.ModeratedItem{
		ID:   row.ID,
		Kind: domain.ItemKind(row.Kind),
		Fields: domain.ItemFields{
			Title:       row.Title,
			TitleAlt:    row.TitleAlt,
			Body:        row.Body,
			BodyAlt:     row.BodyAlt,
			EventDate:   deref(row.EventDate),
			Category:    domain.EventCategory(deref(row.Category)),
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			Attribution: deref(row.Attribution),
		},
		Status:      domain.ItemStatus(row.Status),
		SubmitterID: row.SubmitterID,
		ApproverID:  row.ApproverID,
		ApprovedAt:  row.ApprovedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
