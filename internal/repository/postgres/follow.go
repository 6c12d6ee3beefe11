package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowStore struct {
	pool *pgxpool.Pool
}

func NewFollowStore(pool *pgxpool.Pool) *FollowStore {
	return &FollowStore{pool: pool}
}

// Toggle flips the follower→following edge and returns whether it exists
// afterwards. DELETE first: if a row went away the caller just unfollowed.
// Otherwise insert with ON CONFLICT DO NOTHING — under concurrent duplicate
// requests both paths converge on the primary key, no check-then-act window.
func (s *FollowStore) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	del := `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2`

	tag, err := s.pool.Exec(ctx, del, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("unfollow: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	ins := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, ins, followerID, followingID); err != nil {
		return false, fmt.Errorf("follow: %w", err)
	}
	return true, nil
}
