package reputation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// DefaultBadges is the catalog installed by "tarikhctl badges seed".
func DefaultBadges() []domain.Badge {
	return []domain.Badge{
		{Name: "Contributor", Description: "First approved contribution", PointsRequired: 5},
		{Name: "Chronicler", Description: "Reached 50 points", PointsRequired: 50},
		{Name: "Historian", Description: "Reached 200 points", PointsRequired: 200},
		{Name: "Scholar", Description: "Reached 500 points", PointsRequired: 500},
		{Name: "Luminary", Description: "Reached 1000 points", PointsRequired: 1000},
	}
}

// SeedBadges installs the given catalog, updating badges that already exist
// by name. Existing grants are kept.
func (s *Service) SeedBadges(ctx context.Context, badges []domain.Badge) ([]domain.Badge, error) {
	var errs []domain.FieldError
	for i, b := range badges {
		if strings.TrimSpace(b.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("badges[%d].name", i), Message: "required"})
		}
		if b.PointsRequired < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("badges[%d].points_required", i), Message: "must be >= 0"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	out := make([]domain.Badge, 0, len(badges))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		out = out[:0]
		for _, b := range badges {
			if b.ID == uuid.Nil {
				b.ID = uuid.New()
			}
			b.Name = strings.TrimSpace(b.Name)
			saved, err := s.badges.Upsert(txCtx, b)
			if err != nil {
				return fmt.Errorf("upsert badge %q: %w", b.Name, err)
			}
			out = append(out, *saved)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reputation.SeedBadges: %w", err)
	}

	s.log.InfoContext(ctx, "badge catalog seeded", slog.Int("count", len(out)))
	return out, nil
}
