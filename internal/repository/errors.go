package repository

import "errors"

// Sentinel errors the handlers translate into response-envelope status codes.
// Stores map driver errors (pgx.ErrNoRows, unique violations) onto these so
// nothing above the repository layer ever inspects a Postgres error code.
var (
	// ErrNotFound: the requested entity does not exist.
	ErrNotFound = errors.New("repository: not found")

	// ErrDuplicateEmail: a user with this email is already registered.
	ErrDuplicateEmail = errors.New("repository: email already registered")

	// ErrDuplicateUsername: a profile with this username already exists.
	ErrDuplicateUsername = errors.New("repository: username already taken")

	// ErrDuplicateRoomName: a public room with this name already exists.
	ErrDuplicateRoomName = errors.New("repository: room name already taken")

	// ErrDuplicateAdminRoom: the profile already administers a self-service room.
	ErrDuplicateAdminRoom = errors.New("repository: profile already has a room")
)
