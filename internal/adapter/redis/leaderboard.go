// Package redis mirrors reputation totals into a Redis sorted set so the
// leaderboard can be served without scanning the users table.
package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// Client is the subset of the go-redis API the leaderboard needs.
type Client interface {
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Ping(ctx context.Context) *redis.StatusCmd
}

// Leaderboard stores user totals in a sorted set and usernames in a hash.
type Leaderboard struct {
	client   Client
	key      string
	namesKey string
}

// NewLeaderboard creates a leaderboard stored under key.
func NewLeaderboard(client Client, key string) *Leaderboard {
	return &Leaderboard{client: client, key: key, namesKey: key + ":names"}
}

// NewClient opens a go-redis client.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Set records the user's current total. Totals only grow, so writes that
// arrive out of order are resolved with GT.
func (l *Leaderboard) Set(ctx context.Context, e domain.LeaderboardEntry) error {
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAddGT(ctx, l.key, redis.Z{Score: float64(e.Points), Member: e.UserID.String()})
		if e.Username != "" {
			p.HSet(ctx, l.namesKey, e.UserID.String(), e.Username)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("leaderboard set %s: %w", e.UserID, err)
	}
	return nil
}

// Top returns the n highest totals, best first.
func (l *Leaderboard) Top(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	zs, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard top: %w", err)
	}
	if len(zs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(zs))
	for i, z := range zs {
		ids[i], _ = z.Member.(string)
	}

	names, err := l.client.HMGet(ctx, l.namesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard names: %w", err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		id, err := uuid.Parse(ids[i])
		if err != nil {
			continue
		}
		name, _ := names[i].(string)
		out = append(out, domain.LeaderboardEntry{UserID: id, Username: name, Points: int64(z.Score)})
	}
	return out, nil
}

// Remove drops a user from the leaderboard.
func (l *Leaderboard) Remove(ctx context.Context, userID uuid.UUID) error {
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRem(ctx, l.key, userID.String())
		p.HDel(ctx, l.namesKey, userID.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("leaderboard remove %s: %w", userID, err)
	}
	return nil
}

// Rebuild atomically replaces the leaderboard with entries.
func (l *Leaderboard) Rebuild(ctx context.Context, entries []domain.LeaderboardEntry) error {
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, l.key, l.namesKey)
		for _, e := range entries {
			p.ZAdd(ctx, l.key, redis.Z{Score: float64(e.Points), Member: e.UserID.String()})
			p.HSet(ctx, l.namesKey, e.UserID.String(), e.Username)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("leaderboard rebuild: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (l *Leaderboard) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
