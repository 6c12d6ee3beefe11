package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
	"go.uber.org/zap"
)

type stubUploader struct {
	url string
	err error
}

func (s stubUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.url, s.err
}

// multipartBody builds a form body with the given fields and, optionally, a
// small file part named "file".
func multipartBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		fw, err := w.CreateFormFile("file", "dp.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestToggleJoinRoomNotFound(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	roomID := uuid.New()
	roomRepo.On("GetByID", mock.Anything, roomID).Return(nil, repository.ErrNotFound).Once()

	h := NewRoomHandler(roomRepo, &repository.MockMembershipRepository{}, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodPost, "/v1/rooms/id/"+roomID.String()+"/toggle-join", nil, uuid.New())
	c.Params = gin.Params{{Key: "roomId", Value: roomID.String()}}
	h.ToggleJoin(c)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "room not found", decodeBody(t, rr)["error"])
}

func TestToggleJoinInvalidID(t *testing.T) {
	h := NewRoomHandler(&repository.MockRoomRepository{}, &repository.MockMembershipRepository{}, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodPost, "/v1/rooms/id/nope/toggle-join", nil, uuid.New())
	c.Params = gin.Params{{Key: "roomId", Value: "nope"}}
	h.ToggleJoin(c)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggleJoin(t *testing.T) {
	tcases := []struct {
		name            string
		joinedAfter     bool
		expectedMessage string
	}{
		{name: "join", joinedAfter: true, expectedMessage: "Room joined successfully"},
		{name: "leave", joinedAfter: false, expectedMessage: "Room left successfully"},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			roomRepo := &repository.MockRoomRepository{}
			membershipRepo := &repository.MockMembershipRepository{}
			defer roomRepo.AssertExpectations(t)
			defer membershipRepo.AssertExpectations(t)

			requesterID := uuid.New()
			roomID := uuid.New()
			room := &models.Room{ID: roomID, RoomType: models.RoomTypeUser, RoomName: "CS-2025"}
			roomRepo.On("GetByID", mock.Anything, roomID).Return(room, nil).Once()
			membershipRepo.On("Toggle", mock.Anything, requesterID, roomID).Return(tc.joinedAfter, nil).Once()

			h := NewRoomHandler(roomRepo, membershipRepo, nil, stubUploader{}, nil, zap.NewNop())
			c, rr := testContext(http.MethodPost, "/v1/rooms/id/"+roomID.String()+"/toggle-join", nil, requesterID)
			c.Params = gin.Params{{Key: "roomId", Value: roomID.String()}}
			h.ToggleJoin(c)

			assert.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, tc.expectedMessage, body["message"])
			data := body["data"].(map[string]any)
			assert.Equal(t, tc.joinedAfter, data["is_joined"])
		})
	}
}

func TestGetRoomProfile(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	roomID := uuid.New()
	rp := &models.RoomProfile{
		Room:              models.Room{ID: roomID, RoomType: models.RoomTypeUser, RoomName: "CS-2025"},
		TotalParticipants: 5,
		TotalMessages:     10,
	}
	roomRepo.On("GetProfile", mock.Anything, roomID).Return(rp, nil).Once()

	h := NewRoomHandler(roomRepo, nil, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodGet, "/v1/rooms/id/"+roomID.String()+"/profile", nil, uuid.New())
	c.Params = gin.Params{{Key: "roomId", Value: roomID.String()}}
	h.GetRoomProfile(c)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, float64(5), data["total_participants"])
	assert.Equal(t, float64(10), data["total_messages"])
	assert.Equal(t, 2.0, data["activity_score"])
}

func TestGetRoomProfileEmptyRoom(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	roomID := uuid.New()
	rp := &models.RoomProfile{
		Room: models.Room{ID: roomID, RoomType: models.RoomTypeAdmin, RoomName: "quiet"},
	}
	roomRepo.On("GetProfile", mock.Anything, roomID).Return(rp, nil).Once()

	h := NewRoomHandler(roomRepo, nil, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodGet, "/v1/rooms/id/"+roomID.String()+"/profile", nil, uuid.New())
	c.Params = gin.Params{{Key: "roomId", Value: roomID.String()}}
	h.GetRoomProfile(c)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	// No participants, no messages: score is 0, not a division error.
	assert.Equal(t, 0.0, data["activity_score"])
}

func TestListPublicRooms(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	requesterID := uuid.New()
	rows := []models.RoomRow{
		{
			Room: models.Room{ID: uuid.New(), RoomType: models.RoomTypeUser, RoomName: "CS-2025"},
			AdminProfile: &models.AdminProfileSummary{
				ID: uuid.New(), FName: "Asha", Username: "asha",
			},
			TotalParticipants: 12,
		},
	}
	roomRepo.On("ListPublic", mock.Anything, requesterID, "cs", pagination.Params{Page: 1, Limit: 10}).
		Return(rows, int64(1), nil).Once()

	h := NewRoomHandler(roomRepo, nil, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodGet, "/v1/rooms/public?search=cs", nil, requesterID)
	h.ListPublic(c)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "CS-2025", item["room_name"])
	assert.Equal(t, float64(12), item["total_participants"])
	admin := item["admin_profile"].(map[string]any)
	assert.Equal(t, "asha", admin["username"])
}

func TestRecentRoomsWithoutCache(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	requesterID := uuid.New()
	rows := []models.RoomRow{
		{Room: models.Room{ID: uuid.New(), RoomType: models.RoomTypeAdmin, RoomName: "fresh"}},
	}
	roomRepo.On("Recent", mock.Anything, requesterID, 4).Return(rows, nil).Once()

	h := NewRoomHandler(roomRepo, nil, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodGet, "/v1/rooms/recent", nil, requesterID)
	h.Recent(c)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Recently added rooms fetched successfully", body["message"])
	rooms := body["data"].(map[string]any)["rooms"].([]any)
	assert.Len(t, rooms, 1)
}

func TestCreatePublicRoom(t *testing.T) {
	requesterID := uuid.New()
	profileID := uuid.New()
	profile := &models.Profile{ID: profileID, UserID: requesterID, Username: "asha"}

	tcases := []struct {
		name           string
		createErr      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			createErr:      nil,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate name",
			createErr:      repository.ErrDuplicateRoomName,
			expectedStatus: http.StatusConflict,
			expectedError:  "room with same name already exists",
		},
		{
			name:           "second room for same admin",
			createErr:      repository.ErrDuplicateAdminRoom,
			expectedStatus: http.StatusConflict,
			expectedError:  "you already have a public room created",
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			roomRepo := &repository.MockRoomRepository{}
			membershipRepo := &repository.MockMembershipRepository{}
			profileRepo := &repository.MockProfileRepository{}
			defer roomRepo.AssertExpectations(t)
			defer membershipRepo.AssertExpectations(t)
			defer profileRepo.AssertExpectations(t)

			profileRepo.On("GetByUserID", mock.Anything, requesterID).Return(profile, nil).Once()

			room := &models.Room{ID: uuid.New(), RoomType: models.RoomTypeUser, RoomName: "CS-2025"}
			if tc.createErr != nil {
				roomRepo.On("Create", mock.Anything, mock.MatchedBy(func(p repository.CreateRoomParams) bool {
					return p.RoomType == models.RoomTypeUser && p.RoomName == "CS-2025"
				})).Return(nil, tc.createErr).Once()
			} else {
				roomRepo.On("Create", mock.Anything, mock.MatchedBy(func(p repository.CreateRoomParams) bool {
					return p.RoomType == models.RoomTypeUser &&
						p.RoomName == "CS-2025" &&
						p.AdminProfileID != nil && *p.AdminProfileID == profileID &&
						p.DisplayImage == "http://cdn.test/dp.png"
				})).Return(room, nil).Once()
				membershipRepo.On("Add", mock.Anything, requesterID, room.ID).Return(nil).Once()
			}

			body, contentType := multipartBody(t, map[string]string{
				"room_name":   "CS-2025",
				"description": "batch of 2025",
			}, true)

			h := NewRoomHandler(roomRepo, membershipRepo, profileRepo, stubUploader{url: "http://cdn.test/dp.png"}, nil, zap.NewNop())
			c, rr := testContext(http.MethodPost, "/v1/rooms/public", body, requesterID)
			c.Request.Header.Set("Content-Type", contentType)
			h.CreatePublic(c)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeBody(t, rr)["error"])
			}
		})
	}
}

func TestCreatePublicRoomMissingFile(t *testing.T) {
	requesterID := uuid.New()
	profileRepo := &repository.MockProfileRepository{}
	defer profileRepo.AssertExpectations(t)
	profileRepo.On("GetByUserID", mock.Anything, requesterID).
		Return(&models.Profile{ID: uuid.New(), UserID: requesterID}, nil).Once()

	body, contentType := multipartBody(t, map[string]string{
		"room_name":   "CS-2025",
		"description": "batch of 2025",
	}, false)

	h := NewRoomHandler(&repository.MockRoomRepository{}, &repository.MockMembershipRepository{}, profileRepo, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodPost, "/v1/rooms/public", body, requesterID)
	c.Request.Header.Set("Content-Type", contentType)
	h.CreatePublic(c)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "display image file is required", decodeBody(t, rr)["error"])
}

func TestCreatePublicRoomUploadFails(t *testing.T) {
	requesterID := uuid.New()
	profileRepo := &repository.MockProfileRepository{}
	defer profileRepo.AssertExpectations(t)
	profileRepo.On("GetByUserID", mock.Anything, requesterID).
		Return(&models.Profile{ID: uuid.New(), UserID: requesterID}, nil).Once()

	body, contentType := multipartBody(t, map[string]string{
		"room_name":   "CS-2025",
		"description": "batch of 2025",
	}, true)

	// Room repo gets no expectations: an upload failure must abort before
	// any persistence write.
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	h := NewRoomHandler(roomRepo, &repository.MockMembershipRepository{}, profileRepo, stubUploader{err: assert.AnError}, nil, zap.NewNop())
	c, rr := testContext(http.MethodPost, "/v1/rooms/public", body, requesterID)
	c.Request.Header.Set("Content-Type", contentType)
	h.CreatePublic(c)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "display image upload failed", decodeBody(t, rr)["error"])
}

func TestGetPrivateRoomUnassigned(t *testing.T) {
	roomRepo := &repository.MockRoomRepository{}
	defer roomRepo.AssertExpectations(t)

	requesterID := uuid.New()
	roomRepo.On("CollegeRoomFor", mock.Anything, requesterID).Return(nil, repository.ErrNotFound).Once()

	h := NewRoomHandler(roomRepo, nil, nil, stubUploader{}, nil, zap.NewNop())
	c, rr := testContext(http.MethodGet, "/v1/rooms/private", nil, requesterID)
	h.GetPrivate(c)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "no college room assigned", decodeBody(t, rr)["error"])
}
