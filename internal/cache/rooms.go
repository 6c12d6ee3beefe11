// Package cache is a cache-aside layer over Redis for the small, hot room
// lists (recent and trending). Keys are per requester because both lists
// exclude rooms the requester already joined.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"go.uber.org/zap"
)

// List kinds; they double as key prefixes.
const (
	KindRecent   = "rooms:recent"
	KindTrending = "rooms:trending"
)

// TTL is short: these lists shift with every join, and a minute of staleness
// on a discovery page is invisible to users.
const roomListTTL = time.Minute

// RoomLists caches per-user room lists. All failures degrade to a cache miss;
// Redis being down must never take discovery endpoints with it.
type RoomLists struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRoomLists(client *redis.Client, logger *zap.Logger) *RoomLists {
	return &RoomLists{client: client, logger: logger}
}

func key(kind string, userID uuid.UUID) string {
	return kind + ":" + userID.String()
}

// Get returns the cached list for (kind, user) and whether it was present.
func (c *RoomLists) Get(ctx context.Context, kind string, userID uuid.UUID) ([]models.RoomRow, bool) {
	data, err := c.client.Get(ctx, key(kind, userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("room list cache read failed", zap.String("kind", kind), zap.Error(err))
		}
		return nil, false
	}

	var rooms []models.RoomRow
	if err := json.Unmarshal(data, &rooms); err != nil {
		c.logger.Warn("room list cache entry corrupt", zap.String("kind", kind), zap.Error(err))
		return nil, false
	}
	return rooms, true
}

// Set stores the list for (kind, user) with the standard TTL.
func (c *RoomLists) Set(ctx context.Context, kind string, userID uuid.UUID, rooms []models.RoomRow) {
	data, err := json.Marshal(rooms)
	if err != nil {
		c.logger.Warn("room list cache marshal failed", zap.String("kind", kind), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key(kind, userID), data, roomListTTL).Err(); err != nil {
		c.logger.Warn("room list cache write failed", zap.String("kind", kind), zap.Error(err))
	}
}

// Invalidate drops both lists for a user. Called after a membership toggle so
// a just-joined room disappears from the user's discovery lists immediately.
func (c *RoomLists) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := c.client.Del(ctx, key(KindRecent, userID), key(KindTrending, userID)).Err(); err != nil {
		c.logger.Warn("room list cache invalidate failed", zap.Error(err))
	}
}
