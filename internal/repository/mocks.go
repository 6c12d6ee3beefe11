package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
)

// testify doubles for handler tests. Nil-tolerant on pointer returns so
// error cases can be expressed as .Return(nil, err).

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, params CreateUserParams) (*models.User, error) {
	args := m.Called(ctx, params)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SetCollegeRoom(ctx context.Context, userID, roomID uuid.UUID) error {
	args := m.Called(ctx, userID, roomID)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, params CreateProfileParams) (*models.Profile, error) {
	args := m.Called(ctx, params)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.ProfileRow, int64, error) {
	args := m.Called(ctx, requesterID, search, p)
	var rows []models.ProfileRow
	if r, ok := args.Get(0).([]models.ProfileRow); ok {
		rows = r
	}
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) GetDetailByUsername(ctx context.Context, username string, requesterID uuid.UUID) (*models.ProfileDetail, error) {
	args := m.Called(ctx, username, requesterID)
	if d, ok := args.Get(0).(*models.ProfileDetail); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, params CreateRoomParams) (*models.Room, error) {
	args := m.Called(ctx, params)
	if r, ok := args.Get(0).(*models.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	args := m.Called(ctx, roomID)
	if r, ok := args.Get(0).(*models.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoomRepository) GetProfile(ctx context.Context, roomID uuid.UUID) (*models.RoomProfile, error) {
	args := m.Called(ctx, roomID)
	if r, ok := args.Get(0).(*models.RoomProfile); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoomRepository) ListPublic(ctx context.Context, requesterID uuid.UUID, search string, p pagination.Params) ([]models.RoomRow, int64, error) {
	args := m.Called(ctx, requesterID, search, p)
	var rows []models.RoomRow
	if r, ok := args.Get(0).([]models.RoomRow); ok {
		rows = r
	}
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepository) ListCollege(ctx context.Context, search string, p pagination.Params) ([]models.RoomRow, int64, error) {
	args := m.Called(ctx, search, p)
	var rows []models.RoomRow
	if r, ok := args.Get(0).([]models.RoomRow); ok {
		rows = r
	}
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepository) ListJoined(ctx context.Context, requesterID uuid.UUID) ([]models.RoomRow, error) {
	args := m.Called(ctx, requesterID)
	var rows []models.RoomRow
	if r, ok := args.Get(0).([]models.RoomRow); ok {
		rows = r
	}
	return rows, args.Error(1)
}

func (m *MockRoomRepository) CollegeRoomFor(ctx context.Context, userID uuid.UUID) (*models.RoomRow, error) {
	args := m.Called(ctx, userID)
	if r, ok := args.Get(0).(*models.RoomRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoomRepository) GetCollegeRoomByName(ctx context.Context, collegeName string) (*models.Room, error) {
	args := m.Called(ctx, collegeName)
	if r, ok := args.Get(0).(*models.Room); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoomRepository) Recent(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error) {
	args := m.Called(ctx, requesterID, limit)
	var rows []models.RoomRow
	if r, ok := args.Get(0).([]models.RoomRow); ok {
		rows = r
	}
	return rows, args.Error(1)
}

func (m *MockRoomRepository) Trending(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error) {
	args := m.Called(ctx, requesterID, limit)
	var rows []models.RoomRow
	if r, ok := args.Get(0).([]models.RoomRow); ok {
		rows = r
	}
	return rows, args.Error(1)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Toggle(ctx context.Context, userID, roomID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, roomID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRepository) Add(ctx context.Context, userID, roomID uuid.UUID) error {
	args := m.Called(ctx, userID, roomID)
	return args.Error(0)
}
