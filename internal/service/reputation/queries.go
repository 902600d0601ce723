package reputation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/access"
)

// Leaderboard returns the top n users by points. It reads the cache when one
// is configured and falls back to the database when the cache errors or is
// empty.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		n = defaultLeaderboardSize
	}
	if n > maxLeaderboardSize {
		n = maxLeaderboardSize
	}

	if s.cache != nil {
		entries, err := s.cache.Top(ctx, n)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
		if err != nil {
			s.metrics.CacheError("top")
			s.log.WarnContext(ctx, "leaderboard cache read failed, using database",
				slog.String("error", err.Error()),
			)
		}
	}

	entries, err := s.users.TopByPoints(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("reputation.Leaderboard: %w", err)
	}
	return entries, nil
}

// RebuildLeaderboard replaces the cached leaderboard with the database's
// current top users. It returns how many entries were written.
func (s *Service) RebuildLeaderboard(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, fmt.Errorf("reputation.RebuildLeaderboard: leaderboard cache is not configured")
	}

	entries, err := s.users.TopByPoints(ctx, RebuildSize)
	if err != nil {
		return 0, fmt.Errorf("reputation.RebuildLeaderboard: %w", err)
	}
	if err := s.cache.Rebuild(ctx, entries); err != nil {
		return 0, fmt.Errorf("reputation.RebuildLeaderboard: %w", err)
	}

	s.log.InfoContext(ctx, "leaderboard rebuilt", slog.Int("entries", len(entries)))
	return len(entries), nil
}

// Forget drops a deleted user from the leaderboard cache.
func (s *Service) Forget(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Remove(ctx, userID); err != nil {
		s.metrics.CacheError("remove")
		s.log.WarnContext(ctx, "leaderboard remove failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// History returns the points ledger of userID. Users see their own history;
// moderators see anyone's.
func (s *Service) History(ctx context.Context, p domain.Principal, userID uuid.UUID, limit, offset int) ([]domain.PointAward, error) {
	if !p.Is(userID) {
		if err := access.Check(p, access.Moderator); err != nil {
			return nil, err
		}
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	awards, err := s.awards.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("reputation.History: %w", err)
	}
	return awards, nil
}

// Badges returns the badge catalog ordered by threshold.
func (s *Service) Badges(ctx context.Context) ([]domain.Badge, error) {
	badges, err := s.badges.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reputation.Badges: %w", err)
	}
	return badges, nil
}

// UserBadges returns the badges granted to userID.
func (s *Service) UserBadges(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error) {
	badges, err := s.badges.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reputation.UserBadges: %w", err)
	}
	return badges, nil
}
