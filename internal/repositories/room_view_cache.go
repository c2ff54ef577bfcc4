package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

// versionTTL bounds how long a room's version counter outlives its last write.
const versionTTL = time.Hour

// RoomViewCacheRepository caches aggregated room views in Redis.
// Every write to a room bumps a per-room version; a view is only stored
// when the version is still the one read before the view was built.
type RoomViewCacheRepository struct {
	client      *redis.Client
	exp         time.Duration // expiration duration for cached views
	afterCommit func(ctx context.Context, fn func())
}

// NewRoomViewCacheRepository creates a new repository instance with the given TTL.
// afterCommit, when set, queues a second eviction to run after the request
// transaction commits.
func NewRoomViewCacheRepository(
	client *redis.Client,
	expiration time.Duration,
	afterCommit func(ctx context.Context, fn func()),
) *RoomViewCacheRepository {
	return &RoomViewCacheRepository{
		client:      client,
		exp:         expiration,
		afterCommit: afterCommit,
	}
}

func roomViewKey(id uuid.UUID) string {
	return fmt.Sprintf("room_view:%s", id)
}

func roomVersionKey(id uuid.UUID) string {
	return fmt.Sprintf("room_view_version:%s", id)
}

// Get returns the cached view, or nil on a cache miss.
func (r *RoomViewCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.RoomView, error) {
	key := roomViewKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("key", key, "result", "miss", "error", nil)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "result", nil, "error", err)
		return nil, err
	}

	var view models.RoomView
	if err := json.Unmarshal(val, &view); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", "hit", "error", nil)
	return &view, nil
}

// Version returns the current write version of a room. A room never
// written to has version 0.
func (r *RoomViewCacheRepository) Version(ctx context.Context, id uuid.UUID) (int64, error) {
	key := roomVersionKey(id)

	version, err := readVersion(r.client.Get(ctx, key))

	logger.Log.Infow("key", key, "result", version, "error", err)

	return version, err
}

// SetIfVersion stores a view with the repository TTL unless the room was
// written to since version was read. It reports whether the view was stored.
func (r *RoomViewCacheRepository) SetIfVersion(ctx context.Context, view *models.RoomView, version int64) (bool, error) {
	key := roomViewKey(view.RoomID)
	versionKey := roomVersionKey(view.RoomID)

	val, err := json.Marshal(view)
	if err != nil {
		return false, err
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(tx.Get(ctx, versionKey))
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, val, r.exp)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, versionKey)
	if errors.Is(err, redis.TxFailedErr) {
		err = nil
	}

	logger.Log.Infow("key", key, "ttl", r.exp, "version", version, "result", stored, "error", err)

	return stored, err
}

// Delete evicts a view and bumps the room version so that views built from
// earlier reads are not stored. Evicting an absent key is not an error.
func (r *RoomViewCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.invalidate(ctx, id)

	if r.afterCommit != nil {
		r.afterCommit(ctx, func() {
			_ = r.invalidate(context.WithoutCancel(ctx), id)
		})
	}

	return err
}

func (r *RoomViewCacheRepository) invalidate(ctx context.Context, id uuid.UUID) error {
	key := roomViewKey(id)
	versionKey := roomVersionKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		pipe.Del(ctx, key)
		return nil
	})

	logger.Log.Infow("key", key, "result", "evicted", "error", err)

	return err
}

func readVersion(cmd *redis.StringCmd) (int64, error) {
	version, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}
