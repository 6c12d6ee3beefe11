package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
)

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Create(ctx context.Context, params repository.CreateUserParams) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, college_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, college_name, college_room_id, created_at`

	var u models.User
	err := s.pool.QueryRow(ctx, query, params.Email, params.PasswordHash, params.CollegeName).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CollegeName,
		&u.CollegeRoomID,
		&u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, college_name, college_room_id, created_at
		FROM users
		WHERE email = $1`

	return s.scanOne(ctx, query, email)
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, college_name, college_room_id, created_at
		FROM users
		WHERE id = $1`

	return s.scanOne(ctx, query, id)
}

func (s *UserStore) SetCollegeRoom(ctx context.Context, userID, roomID uuid.UUID) error {
	query := `UPDATE users SET college_room_id = $2 WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, userID, roomID)
	if err != nil {
		return fmt.Errorf("set college room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *UserStore) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CollegeName,
		&u.CollegeRoomID,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
