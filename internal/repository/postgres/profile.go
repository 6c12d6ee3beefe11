package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
)

type ProfileStore struct {
	pool *pgxpool.Pool
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) Create(ctx context.Context, params repository.CreateProfileParams) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, f_name, l_name, username)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, f_name, l_name, username, avatar, bio, created_at`

	var p models.Profile
	err := s.pool.QueryRow(ctx, query, params.UserID, params.FName, params.LName, params.Username).Scan(
		&p.ID,
		&p.UserID,
		&p.FName,
		&p.LName,
		&p.Username,
		&p.Avatar,
		&p.Bio,
		&p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "profiles_username_key") {
			return nil, repository.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, user_id, f_name, l_name, username, avatar, bio, created_at
		FROM profiles
		WHERE user_id = $1`

	var p models.Profile
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.FName,
		&p.LName,
		&p.Username,
		&p.Avatar,
		&p.Bio,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// List is the profile discovery read model: everyone but the requester,
// follower counts, and whether the requester already follows each row.
// Ordered by (created_at, id) so page windows are reproducible.
func (s *ProfileStore) List(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.ProfileRow, int64, error) {
	pattern := likePattern(search)

	countQuery := `
		SELECT COUNT(*)
		FROM profiles p
		WHERE p.user_id <> $1
		  AND (p.f_name ILIKE $2 OR p.l_name ILIKE $2 OR p.username ILIKE $2)`

	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, requesterID, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	query := `
		SELECT p.id, p.user_id, p.f_name, p.l_name, p.username, p.avatar, p.bio, p.created_at,
		       (SELECT COUNT(*) FROM follows f WHERE f.following_id = p.user_id) AS followers,
		       EXISTS (
		           SELECT 1 FROM follows f
		           WHERE f.follower_id = $1 AND f.following_id = p.user_id
		       ) AS is_following
		FROM profiles p
		WHERE p.user_id <> $1
		  AND (p.f_name ILIKE $2 OR p.l_name ILIKE $2 OR p.username ILIKE $2)
		ORDER BY p.created_at, p.id
		LIMIT $3 OFFSET $4`

	rows, err := s.pool.Query(ctx, query, requesterID, pattern, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]models.ProfileRow, 0)
	for rows.Next() {
		var row models.ProfileRow
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.FName,
			&row.LName,
			&row.Username,
			&row.Avatar,
			&row.Bio,
			&row.CreatedAt,
			&row.Followers,
			&row.IsFollowing,
		); err != nil {
			return nil, 0, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate profiles: %w", err)
	}

	return profiles, total, nil
}

// GetDetailByUsername gathers the whole profile page in one round trip:
// follow status relative to the requester, both edge counts, the authored
// message count and the owning user's college.
func (s *ProfileStore) GetDetailByUsername(ctx context.Context, username string, requesterID uuid.UUID) (*models.ProfileDetail, error) {
	query := `
		SELECT p.id, p.user_id, p.f_name, p.l_name, p.username, p.avatar, p.bio, p.created_at,
		       EXISTS (
		           SELECT 1 FROM follows f
		           WHERE f.follower_id = $2 AND f.following_id = p.user_id
		       ) AS is_following,
		       (SELECT COUNT(*) FROM follows f WHERE f.following_id = p.user_id) AS followers,
		       (SELECT COUNT(*) FROM follows f WHERE f.follower_id = p.user_id) AS following,
		       (SELECT COUNT(*) FROM messages m WHERE m.profile_id = p.id) AS messages,
		       u.college_name
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.username = $1`

	var d models.ProfileDetail
	err := s.pool.QueryRow(ctx, query, username, requesterID).Scan(
		&d.ID,
		&d.UserID,
		&d.FName,
		&d.LName,
		&d.Username,
		&d.Avatar,
		&d.Bio,
		&d.CreatedAt,
		&d.IsFollowing,
		&d.Followers,
		&d.Following,
		&d.Messages,
		&d.CollegeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get profile detail: %w", err)
	}
	return &d, nil
}
