package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
)

// Every method takes a context so request cancellation propagates into the
// database driver. Not-found is always ErrNotFound, never a nil result.

// CreateUserParams carries the fields needed to register a user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	CollegeName  string
}

// CreateProfileParams carries the fields for the public identity created
// alongside a user.
type CreateProfileParams struct {
	UserID   uuid.UUID
	FName    string
	LName    string
	Username string
}

// CreateRoomParams covers all three room flavors. AdminProfileID is nil for
// College rooms and required for User/Admin rooms.
type CreateRoomParams struct {
	RoomType       models.RoomType
	RoomName       string
	RoomUsername   string
	Description    string
	DisplayImage   string
	Tags           []string
	AdminProfileID *uuid.UUID
}

// UserRepository handles authentication identities.
type UserRepository interface {
	// Create inserts a user. Returns ErrDuplicateEmail on an email collision.
	Create(ctx context.Context, params CreateUserParams) (*models.User, error)

	// GetByEmail returns the user registered under email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// SetCollegeRoom points the user at their college's private room.
	SetCollegeRoom(ctx context.Context, userID, roomID uuid.UUID) error
}

// ProfileRepository composes the profile read models.
type ProfileRepository interface {
	// Create inserts the public identity for a user. Returns
	// ErrDuplicateUsername on a username collision.
	Create(ctx context.Context, params CreateProfileParams) (*models.Profile, error)

	// GetByUserID returns the profile owned by a user.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

	// List returns one page of profiles excluding the requester, annotated
	// with follower counts and the requester's follow status, plus the total
	// match count. Search matches f_name, l_name or username, substring and
	// case-insensitive.
	List(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.ProfileRow, int64, error)

	// GetDetailByUsername returns the full profile page row: follow status
	// relative to the requester, follower/following/message counts, and the
	// owning user's college name.
	GetDetailByUsername(ctx context.Context, username string, requesterID uuid.UUID) (*models.ProfileDetail, error)
}

// FollowRepository maintains the directed follow edges.
type FollowRepository interface {
	// Toggle removes the follower→following edge if present, otherwise
	// creates it. Returns whether the edge exists afterwards. Atomic: no
	// read-then-write window.
	Toggle(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

// RoomRepository composes the room read models and creation flows.
type RoomRepository interface {
	// Create inserts a room. Unique violations surface as
	// ErrDuplicateRoomName or ErrDuplicateAdminRoom.
	Create(ctx context.Context, params CreateRoomParams) (*models.Room, error)

	// GetByID returns a room without its admin linkage (the public detail view).
	GetByID(ctx context.Context, roomID uuid.UUID) (*models.Room, error)

	// GetProfile returns a room with participant and message totals.
	GetProfile(ctx context.Context, roomID uuid.UUID) (*models.RoomProfile, error)

	// ListPublic returns one page of discoverable User/Admin rooms the
	// requester has not joined, matching search against the room name.
	ListPublic(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.RoomRow, int64, error)

	// ListCollege returns one page of College rooms matching search against
	// room name or room username. No joined-exclusion: college membership is
	// implicit through the user's home-room pointer.
	ListCollege(ctx context.Context, search string, p pagination.Params) ([]models.RoomRow, int64, error)

	// ListJoined returns every room the requester holds a membership in,
	// any type, newest join first.
	ListJoined(ctx context.Context, requesterID uuid.UUID) ([]models.RoomRow, error)

	// CollegeRoomFor resolves the requester's home-room pointer. ErrNotFound
	// when the pointer is unset or dangling.
	CollegeRoomFor(ctx context.Context, userID uuid.UUID) (*models.RoomRow, error)

	// GetCollegeRoomByName finds the College room provisioned for a college.
	GetCollegeRoomByName(ctx context.Context, collegeName string) (*models.Room, error)

	// Recent returns up to limit User/Admin rooms not joined by the
	// requester, newest first.
	Recent(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error)

	// Trending returns up to limit User/Admin rooms not joined by the
	// requester, most participants first.
	Trending(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error)
}

// MembershipRepository maintains the user↔room join rows.
type MembershipRepository interface {
	// Toggle removes the membership if present, otherwise creates it, and
	// returns whether the user is joined afterwards. Atomic per statement;
	// the composite primary key makes concurrent duplicates converge.
	Toggle(ctx context.Context, userID, roomID uuid.UUID) (bool, error)

	// Add creates a membership, idempotently (creator auto-join on room creation).
	Add(ctx context.Context, userID, roomID uuid.UUID) error
}
