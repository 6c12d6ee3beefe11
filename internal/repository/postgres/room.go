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

type RoomStore struct {
	pool *pgxpool.Pool
}

func NewRoomStore(pool *pgxpool.Pool) *RoomStore {
	return &RoomStore{pool: pool}
}

func (s *RoomStore) Create(ctx context.Context, params repository.CreateRoomParams) (*models.Room, error) {
	query := `
		INSERT INTO rooms (room_type, room_name, room_username, description, display_image, tags, admin_profile_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, room_type, room_name, room_username, description, display_image, tags, admin_profile_id, created_at`

	var (
		r        models.Room
		roomType string
	)
	err := s.pool.QueryRow(ctx, query,
		string(params.RoomType),
		params.RoomName,
		params.RoomUsername,
		params.Description,
		params.DisplayImage,
		params.Tags,
		params.AdminProfileID,
	).Scan(
		&r.ID,
		&roomType,
		&r.RoomName,
		&r.RoomUsername,
		&r.Description,
		&r.DisplayImage,
		&r.Tags,
		&r.AdminProfileID,
		&r.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "rooms_public_name_key") {
			return nil, repository.ErrDuplicateRoomName
		}
		if isUniqueViolation(err, "rooms_user_admin_profile_key") {
			return nil, repository.ErrDuplicateAdminRoom
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	r.RoomType = models.RoomType(roomType)
	return &r, nil
}

// GetByID is the public room detail view: the admin linkage is deliberately
// not selected.
func (s *RoomStore) GetByID(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	query := `
		SELECT id, room_type, room_name, room_username, description, display_image, tags, created_at
		FROM rooms
		WHERE id = $1`

	var (
		r        models.Room
		roomType string
	)
	err := s.pool.QueryRow(ctx, query, roomID).Scan(
		&r.ID,
		&roomType,
		&r.RoomName,
		&r.RoomUsername,
		&r.Description,
		&r.DisplayImage,
		&r.Tags,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	r.RoomType = models.RoomType(roomType)
	return &r, nil
}

// GetProfile is the room statistics view: the room plus participant and
// message totals in one round trip.
func (s *RoomStore) GetProfile(ctx context.Context, roomID uuid.UUID) (*models.RoomProfile, error) {
	query := `
		SELECT r.id, r.room_type, r.room_name, r.room_username, r.description, r.display_image, r.tags,
		       r.admin_profile_id, r.created_at,
		       (SELECT COUNT(*) FROM memberships m WHERE m.room_id = r.id) AS total_participants,
		       (SELECT COUNT(*) FROM messages msg WHERE msg.room_id = r.id) AS total_messages
		FROM rooms r
		WHERE r.id = $1`

	var (
		rp       models.RoomProfile
		roomType string
	)
	err := s.pool.QueryRow(ctx, query, roomID).Scan(
		&rp.ID,
		&roomType,
		&rp.RoomName,
		&rp.RoomUsername,
		&rp.Description,
		&rp.DisplayImage,
		&rp.Tags,
		&rp.AdminProfileID,
		&rp.CreatedAt,
		&rp.TotalParticipants,
		&rp.TotalMessages,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get room profile: %w", err)
	}
	rp.RoomType = models.RoomType(roomType)
	return &rp, nil
}

// roomRowColumns is the shared projection for admin-annotated room lists.
// The profiles join is LEFT so College rooms survive; callers that only deal
// in public rooms always get a summary back anyway.
const roomRowColumns = `
	r.id, r.room_type, r.room_name, r.room_username, r.description, r.display_image, r.tags, r.created_at,
	ap.id, ap.f_name, ap.l_name, ap.avatar, ap.username,
	(SELECT COUNT(*) FROM memberships m WHERE m.room_id = r.id) AS total_participants`

func scanRoomRow(rows pgx.Rows) (models.RoomRow, error) {
	var (
		row      models.RoomRow
		roomType string
		adminID  *uuid.UUID
		fName    *string
		lName    *string
		avatar   *string
		username *string
	)
	err := rows.Scan(
		&row.ID,
		&roomType,
		&row.RoomName,
		&row.RoomUsername,
		&row.Description,
		&row.DisplayImage,
		&row.Tags,
		&row.CreatedAt,
		&adminID,
		&fName,
		&lName,
		&avatar,
		&username,
		&row.TotalParticipants,
	)
	if err != nil {
		return models.RoomRow{}, err
	}

	row.RoomType = models.RoomType(roomType)
	if adminID != nil {
		row.AdminProfile = &models.AdminProfileSummary{
			ID:       *adminID,
			FName:    *fName,
			LName:    *lName,
			Avatar:   *avatar,
			Username: *username,
		}
	}
	return row, nil
}

func (s *RoomStore) collectRoomRows(ctx context.Context, query string, args ...any) ([]models.RoomRow, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	result := make([]models.RoomRow, 0)
	for rows.Next() {
		row, err := scanRoomRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return result, nil
}

// ListPublic is the discovery read model: User/Admin rooms matching the
// search, minus everything the requester already joined.
func (s *RoomStore) ListPublic(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.RoomRow, int64, error) {
	pattern := likePattern(search)

	countQuery := `
		SELECT COUNT(*)
		FROM rooms r
		WHERE r.room_type IN ('User', 'Admin')
		  AND r.room_name ILIKE $2
		  AND NOT EXISTS (
		      SELECT 1 FROM memberships m
		      WHERE m.room_id = r.id AND m.user_id = $1
		  )`

	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, requesterID, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count public rooms: %w", err)
	}

	query := `
		SELECT` + roomRowColumns + `
		FROM rooms r
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE r.room_type IN ('User', 'Admin')
		  AND r.room_name ILIKE $2
		  AND NOT EXISTS (
		      SELECT 1 FROM memberships m
		      WHERE m.room_id = r.id AND m.user_id = $1
		  )
		ORDER BY r.created_at, r.id
		LIMIT $3 OFFSET $4`

	result, err := s.collectRoomRows(ctx, query, requesterID, pattern, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ListCollege searches College rooms by name or username. No joined-room
// exclusion here: college membership is implicit through the home-room
// pointer, not a membership row.
func (s *RoomStore) ListCollege(ctx context.Context, search string, p pagination.Params) ([]models.RoomRow, int64, error) {
	pattern := likePattern(search)

	countQuery := `
		SELECT COUNT(*)
		FROM rooms r
		WHERE r.room_type = 'College'
		  AND (r.room_name ILIKE $1 OR r.room_username ILIKE $1)`

	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count college rooms: %w", err)
	}

	query := `
		SELECT` + roomRowColumns + `
		FROM rooms r
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE r.room_type = 'College'
		  AND (r.room_name ILIKE $1 OR r.room_username ILIKE $1)
		ORDER BY r.created_at, r.id
		LIMIT $2 OFFSET $3`

	result, err := s.collectRoomRows(ctx, query, pattern, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ListJoined returns every room the requester is a member of, newest join
// first.
func (s *RoomStore) ListJoined(ctx context.Context, requesterID uuid.UUID) ([]models.RoomRow, error) {
	query := `
		SELECT` + roomRowColumns + `
		FROM memberships mem
		JOIN rooms r ON r.id = mem.room_id
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE mem.user_id = $1
		ORDER BY mem.created_at DESC, r.id`

	return s.collectRoomRows(ctx, query, requesterID)
}

// CollegeRoomFor resolves the user's home-room pointer. The inner join makes
// both "pointer unset" and "pointer dangling" come back as ErrNotFound.
func (s *RoomStore) CollegeRoomFor(ctx context.Context, userID uuid.UUID) (*models.RoomRow, error) {
	query := `
		SELECT` + roomRowColumns + `
		FROM users u
		JOIN rooms r ON r.id = u.college_room_id
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE u.id = $1`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get college room: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get college room: %w", err)
		}
		return nil, repository.ErrNotFound
	}
	row, err := scanRoomRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan college room: %w", err)
	}
	return &row, nil
}

func (s *RoomStore) GetCollegeRoomByName(ctx context.Context, collegeName string) (*models.Room, error) {
	query := `
		SELECT id, room_type, room_name, room_username, description, display_image, tags, created_at
		FROM rooms
		WHERE room_type = 'College' AND room_name = $1`

	var (
		r        models.Room
		roomType string
	)
	err := s.pool.QueryRow(ctx, query, collegeName).Scan(
		&r.ID,
		&roomType,
		&r.RoomName,
		&r.RoomUsername,
		&r.Description,
		&r.DisplayImage,
		&r.Tags,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get college room by name: %w", err)
	}
	r.RoomType = models.RoomType(roomType)
	return &r, nil
}

// Recent returns the newest discoverable rooms the requester hasn't joined.
func (s *RoomStore) Recent(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error) {
	query := `
		SELECT` + roomRowColumns + `
		FROM rooms r
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE r.room_type IN ('User', 'Admin')
		  AND NOT EXISTS (
		      SELECT 1 FROM memberships m
		      WHERE m.room_id = r.id AND m.user_id = $1
		  )
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	return s.collectRoomRows(ctx, query, requesterID, limit)
}

// Trending ranks discoverable rooms by participant count; creation time then
// id break ties so the ranking is stable between refreshes.
func (s *RoomStore) Trending(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error) {
	query := `
		SELECT` + roomRowColumns + `
		FROM rooms r
		LEFT JOIN profiles ap ON ap.id = r.admin_profile_id
		WHERE r.room_type IN ('User', 'Admin')
		  AND NOT EXISTS (
		      SELECT 1 FROM memberships m
		      WHERE m.room_id = r.id AND m.user_id = $1
		  )
		ORDER BY total_participants DESC, r.created_at DESC, r.id
		LIMIT $2`

	return s.collectRoomRows(ctx, query, requesterID, limit)
}
