// Package cache keeps a redis-backed mirror of each user's visible goal list.
// The mirror is never authoritative: every mutation speculatively rewrites it
// for instant reads, rolls it back on failure and drops it on success so the
// next read refetches from the store.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/nkaz/questline/pkg/cleanup"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "goals:"
	mirrorTTL  = 5 * time.Minute
	dialWindow = 5 * time.Second
)

type GoalMirrorI interface {
	Get(ctx context.Context, userID uuid.UUID) ([]*entity.GoalNode, bool)
	Put(ctx context.Context, userID uuid.UUID, goals []*entity.GoalNode)
	Invalidate(ctx context.Context, userIDs ...uuid.UUID)
	RunMutation(ctx context.Context, userID uuid.UUID, speculate Speculation, mutate func() error) error
}

// Speculation rewrites a cached goal list the way the server transaction is
// expected to. It must mirror the server's rules exactly, idempotence guard
// included, or readers see a view that diverges until the next refetch.
type Speculation func(goals []*entity.GoalNode) []*entity.GoalNode

type GoalMirror struct {
	client *redis.Client
}

func NewGoalMirror(redisURL string) (*GoalMirror, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.New("parsing redis url error: " + err.Error())
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), dialWindow)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &GoalMirror{client: client}, nil
}

func NewGoalMirrorWithClient(client *redis.Client) *GoalMirror {
	return &GoalMirror{client: client}
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Get returns the cached partition. Cache failures read as misses: the caller
// falls through to the store.
func (m *GoalMirror) Get(ctx context.Context, userID uuid.UUID) ([]*entity.GoalNode, bool) {
	raw, err := m.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("goal mirror read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	var goals []*entity.GoalNode
	if err := sonic.Unmarshal(raw, &goals); err != nil {
		slog.Warn("goal mirror payload corrupt, dropping", slog.String("error", err.Error()))
		m.Invalidate(ctx, userID)
		return nil, false
	}
	return goals, true
}

func (m *GoalMirror) Put(ctx context.Context, userID uuid.UUID, goals []*entity.GoalNode) {
	raw, err := sonic.Marshal(goals)
	if err != nil {
		slog.Warn("goal mirror marshal failed", slog.String("error", err.Error()))
		return
	}
	if err := m.client.Set(ctx, key(userID), raw, mirrorTTL).Err(); err != nil {
		slog.Warn("goal mirror write failed", slog.String("error", err.Error()))
	}
}

func (m *GoalMirror) Invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, key(id))
	}
	if err := m.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("goal mirror invalidation failed", slog.String("error", err.Error()))
	}
}

// RunMutation wraps a store mutation with the three-phase mirror contract:
// snapshot and speculatively rewrite the partition before the mutation,
// restore the exact snapshot when the mutation fails, and invalidate the
// partition on success so the next read fetches authoritative state.
func (m *GoalMirror) RunMutation(ctx context.Context, userID uuid.UUID, speculate Speculation, mutate func() error) error {
	snapshot, hadSnapshot := m.snapshot(ctx, userID)
	if hadSnapshot && speculate != nil {
		var goals []*entity.GoalNode
		if err := sonic.Unmarshal(snapshot, &goals); err == nil {
			m.Put(ctx, userID, speculate(goals))
		}
	}
	err := mutate()
	if err != nil {
		if hadSnapshot {
			m.restore(ctx, userID, snapshot)
		} else {
			m.Invalidate(ctx, userID)
		}
		return err
	}
	m.Invalidate(ctx, userID)
	return nil
}

func (m *GoalMirror) snapshot(ctx context.Context, userID uuid.UUID) ([]byte, bool) {
	raw, err := m.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("goal mirror snapshot failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return raw, true
}

func (m *GoalMirror) restore(ctx context.Context, userID uuid.UUID, snapshot []byte) {
	if err := m.client.Set(ctx, key(userID), snapshot, mirrorTTL).Err(); err != nil {
		slog.Warn("goal mirror rollback failed", slog.String("error", err.Error()))
	}
}
