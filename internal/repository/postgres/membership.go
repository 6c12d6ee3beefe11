package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MembershipStore struct {
	pool *pgxpool.Pool
}

func NewMembershipStore(pool *pgxpool.Pool) *MembershipStore {
	return &MembershipStore{pool: pool}
}

// Toggle flips the membership row and returns whether the user is joined
// afterwards. Same delete-else-insert shape as follow toggling: each
// statement is atomic and the composite primary key absorbs races between
// concurrent duplicate requests.
func (s *MembershipStore) Toggle(ctx context.Context, userID, roomID uuid.UUID) (bool, error) {
	del := `
		DELETE FROM memberships
		WHERE user_id = $1 AND room_id = $2`

	tag, err := s.pool.Exec(ctx, del, userID, roomID)
	if err != nil {
		return false, fmt.Errorf("leave room: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	ins := `
		INSERT INTO memberships (user_id, room_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, room_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, ins, userID, roomID); err != nil {
		return false, fmt.Errorf("join room: %w", err)
	}
	return true, nil
}

// Add joins a user to a room idempotently. Used for the creator's automatic
// membership on room creation.
func (s *MembershipStore) Add(ctx context.Context, userID, roomID uuid.UUID) error {
	query := `
		INSERT INTO memberships (user_id, room_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, room_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, userID, roomID); err != nil {
		return fmt.Errorf("add membership: %w", err)
	}
	return nil
}
