package models

import (
	"time"

	"github.com/google/uuid"
)

// RoomType partitions rooms into the three provisioning flows.
type RoomType string

const (
	// RoomTypeCollege rooms are private, provisioned by the backend, one per
	// college. Users are attached through their college_room pointer.
	RoomTypeCollege RoomType = "College"
	// RoomTypeUser rooms are public and self-service, at most one per admin
	// profile.
	RoomTypeUser RoomType = "User"
	// RoomTypeAdmin rooms are public and curated by staff.
	RoomTypeAdmin RoomType = "Admin"
)

// User is the authentication identity. It is never returned directly by the
// API; the public-facing record is Profile.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	CollegeName   string     `json:"college_name"`
	CollegeRoomID *uuid.UUID `json:"college_room_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Profile is the public identity, 1:1 with User.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FName     string    `json:"f_name"`
	LName     string    `json:"l_name"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRow is a Profile annotated for the paginated discovery list:
// follower count plus whether the requester already follows this profile's
// user.
type ProfileRow struct {
	Profile
	Followers   int64 `json:"followers"`
	IsFollowing bool  `json:"is_following"`
}

// ProfileDetail carries everything the single-profile page needs in one row.
// Messages is the number of messages this profile has authored across all
// rooms; CollegeName comes from the owning user.
type ProfileDetail struct {
	Profile
	IsFollowing bool   `json:"is_following"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	Messages    int64  `json:"messages"`
	CollegeName string `json:"college_name"`
}

// AdminProfileSummary is the trimmed admin identity embedded in room rows.
type AdminProfileSummary struct {
	ID       uuid.UUID `json:"id"`
	FName    string    `json:"f_name"`
	LName    string    `json:"l_name"`
	Avatar   string    `json:"avatar"`
	Username string    `json:"username"`
}

// Room is a chat space. AdminProfileID is nil for College rooms.
type Room struct {
	ID             uuid.UUID  `json:"id"`
	RoomType       RoomType   `json:"room_type"`
	RoomName       string     `json:"room_name"`
	RoomUsername   string     `json:"room_username"`
	Description    string     `json:"description"`
	DisplayImage   string     `json:"display_image"`
	Tags           []string   `json:"tags"`
	AdminProfileID *uuid.UUID `json:"admin_profile_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RoomRow is a Room annotated for discovery and joined lists. AdminProfile is
// nil when the room has no admin (College rooms).
type RoomRow struct {
	Room
	AdminProfile      *AdminProfileSummary `json:"admin_profile,omitempty"`
	TotalParticipants int64                `json:"total_participants"`
}

// RoomProfile is the room statistics page: participant and message totals.
// The activity score is derived from these by the handler, not stored.
type RoomProfile struct {
	Room
	TotalParticipants int64 `json:"total_participants"`
	TotalMessages     int64 `json:"total_messages"`
}

// Membership is the join table between users and rooms. Row presence means
// "currently joined"; the composite primary key makes duplicates impossible.
type Membership struct {
	UserID    uuid.UUID `json:"user_id"`
	RoomID    uuid.UUID `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a chat message. Only its counts feed the read models here;
// posting and delivery belong to the realtime service.
//
// Messages use bigserial rather than UUID: highest-volume table, and a
// monotonically increasing int64 doubles as a pagination cursor.
type Message struct {
	ID        int64     `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
