package reputation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Award grants delta points to userID at most once per (reason, subjectID).
// A repeated award reports Applied=false and changes nothing, as does an
// award to a user that no longer exists. When called
// inside a transaction it joins it, so the ledger row, the counter and any
// badges commit or roll back together with the caller's work.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, delta int64, reason domain.AwardReason, subjectID uuid.UUID) (*domain.AwardOutcome, error) {
	if delta < 0 {
		return nil, domain.NewValidationError("delta", "must be >= 0")
	}

	var outcome *domain.AwardOutcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Looked up before the insert: a foreign key failure would abort the
		// surrounding transaction.
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("get user: %w", err)
			}
			s.log.WarnContext(ctx, "award skipped, user not found",
				slog.String("user_id", userID.String()),
				slog.String("reason", reason.String()),
				slog.String("subject_id", subjectID.String()),
			)
			outcome = &domain.AwardOutcome{UserID: userID}
			return nil
		}

		inserted, err := s.awards.Insert(txCtx, domain.PointAward{
			ID:        uuid.New(),
			UserID:    userID,
			Delta:     delta,
			Reason:    reason,
			SubjectID: subjectID,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("insert award: %w", err)
		}
		if !inserted {
			outcome = &domain.AwardOutcome{UserID: userID}
			return nil
		}

		outcome, err = s.addPoints(txCtx, userID, delta)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reputation.Award: %w", err)
	}
	return outcome, nil
}

// AddPoints increments the user's counter by delta and re-evaluates badges.
// It bypasses the award ledger; callers that need at-most-once semantics
// use Award.
func (s *Service) AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (*domain.AwardOutcome, error) {
	if delta < 0 {
		return nil, domain.NewValidationError("delta", "must be >= 0")
	}

	var outcome *domain.AwardOutcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		outcome, err = s.addPoints(txCtx, userID, delta)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reputation.AddPoints: %w", err)
	}
	return outcome, nil
}

func (s *Service) addPoints(ctx context.Context, userID uuid.UUID, delta int64) (*domain.AwardOutcome, error) {
	total, err := s.users.AddPoints(ctx, userID, delta)
	if err != nil {
		return nil, fmt.Errorf("add points: %w", err)
	}

	granted, err := s.badges.GrantEligible(ctx, userID, total)
	if err != nil {
		return nil, fmt.Errorf("grant badges: %w", err)
	}

	return &domain.AwardOutcome{
		UserID:    userID,
		Applied:   true,
		Delta:     delta,
		Total:     total,
		NewBadges: granted,
	}, nil
}

// EvaluateBadges grants every badge the user's current total qualifies for
// and does not yet hold. Running it again without a point change is a no-op.
func (s *Service) EvaluateBadges(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	var granted []domain.Badge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		granted, err = s.badges.GrantEligible(txCtx, userID, user.Points)
		if err != nil {
			return fmt.Errorf("grant badges: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reputation.EvaluateBadges: %w", err)
	}
	return granted, nil
}

// Publish reports a committed award: it logs it, records metrics and mirrors
// the new total into the leaderboard cache. Cache failures are logged, not
// returned; the database stays authoritative. Must be called after commit.
func (s *Service) Publish(ctx context.Context, reason domain.AwardReason, outcome *domain.AwardOutcome) {
	if outcome == nil || !outcome.Applied {
		return
	}

	s.metrics.PointsAwarded(reason.String(), outcome.Delta, len(outcome.NewBadges))

	s.log.InfoContext(ctx, "points awarded",
		slog.String("user_id", outcome.UserID.String()),
		slog.String("reason", reason.String()),
		slog.Int64("delta", outcome.Delta),
		slog.Int64("total", outcome.Total),
		slog.Int("new_badges", len(outcome.NewBadges)),
	)

	if s.cache == nil {
		return
	}

	user, err := s.users.GetByID(ctx, outcome.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "leaderboard update skipped",
			slog.String("user_id", outcome.UserID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	err = s.cache.Set(ctx, domain.LeaderboardEntry{
		UserID:   user.ID,
		Username: user.Username,
		Points:   user.Points,
	})
	if err != nil {
		s.metrics.CacheError("set")
		s.log.WarnContext(ctx, "leaderboard update failed",
			slog.String("user_id", outcome.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}
