package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with the given role and zero points.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Username:     "user_" + suffix,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash, role, points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPendingItem creates a pending item of kind submitted by submitterID.
func SeedPendingItem(t *testing.T, pool *pgxpool.Pool, kind domain.ItemKind, submitterID uuid.UUID) domain.ModeratedItem {
	t.Helper()

	ts := now()
	item := domain.ModeratedItem{
		ID:   uuid.New(),
		Kind: kind,
		Fields: domain.ItemFields{
			Title: "Seeded " + string(kind) + " " + uniqueSuffix(),
		},
		Status:      domain.ItemStatusPending,
		SubmitterID: submitterID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	var eventDate, category *string
	if kind == domain.ItemKindEvent {
		d, c := "0628-03-01", string(domain.EventCategoryIslamic)
		eventDate, category = &d, &c
		item.Fields.EventDate = d
		item.Fields.Category = domain.EventCategoryIslamic
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, kind, title, event_date, category, status, submitter_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 'pending', $6, $7, $8)`,
		item.ID, string(kind), item.Fields.Title, eventDate, category, submitterID, ts, ts,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPendingItem: %v", err)
	}

	return item
}

// SeedReference creates a reference item of the given kind.
func SeedReference(t *testing.T, pool *pgxpool.Pool, kind domain.ReferenceKind) domain.ReferenceItem {
	t.Helper()

	ref := domain.ReferenceItem{
		ID:        uuid.New(),
		Kind:      kind,
		RefKey:    string(kind) + ":" + uniqueSuffix(),
		Text:      "Reference text",
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reference_items (id, kind, ref_key, text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		ref.ID, string(ref.Kind), ref.RefKey, ref.Text, ref.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReference: %v", err)
	}

	return ref
}

// SeedBadge creates a badge with a unique name and the given threshold.
func SeedBadge(t *testing.T, pool *pgxpool.Pool, pointsRequired int64) domain.Badge {
	t.Helper()

	badge := domain.Badge{
		ID:             uuid.New(),
		Name:           "badge-" + uniqueSuffix(),
		PointsRequired: pointsRequired,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO badges (id, name, description, points_required) VALUES ($1, $2, '', $3)`,
		badge.ID, badge.Name, badge.PointsRequired,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBadge: %v", err)
	}

	return badge
}
