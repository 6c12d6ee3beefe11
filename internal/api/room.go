package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vikascc28/gossip-camp-backend/internal/cache"
	"github.com/vikascc28/gossip-camp-backend/internal/middleware"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
	"github.com/vikascc28/gossip-camp-backend/internal/stats"
	"github.com/vikascc28/gossip-camp-backend/internal/storage"
	"go.uber.org/zap"
)

// recentTrendingLimit caps the teaser lists on the discovery page.
const recentTrendingLimit = 4

// RoomHandler covers room creation, membership toggling and every room read
// model. roomLists may be nil (tests, cache-less deployments); all cache use
// is best-effort.
type RoomHandler struct {
	rooms       repository.RoomRepository
	memberships repository.MembershipRepository
	profiles    repository.ProfileRepository
	uploader    storage.Uploader
	roomLists   *cache.RoomLists
	logger      *zap.Logger
}

func NewRoomHandler(
	rooms repository.RoomRepository,
	memberships repository.MembershipRepository,
	profiles repository.ProfileRepository,
	uploader storage.Uploader,
	roomLists *cache.RoomLists,
	logger *zap.Logger,
) *RoomHandler {
	return &RoomHandler{
		rooms:       rooms,
		memberships: memberships,
		profiles:    profiles,
		uploader:    uploader,
		roomLists:   roomLists,
		logger:      logger,
	}
}

// uploadDisplayImage pushes the multipart file to object storage and returns
// the public URL. An upload failure aborts the creation flow before any row
// is written.
func (h *RoomHandler) uploadDisplayImage(c *gin.Context, file *multipart.FileHeader) (string, bool) {
	f, err := file.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		respondError(c, http.StatusBadRequest, "display image could not be read")
		return "", false
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file.Filename, f)
	if err != nil {
		h.logger.Error("display image upload failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "display image upload failed")
		return "", false
	}
	return url, true
}

type createPrivateRoomRequest struct {
	RoomName     string `form:"room_name" binding:"required"`
	RoomUsername string `form:"room_username" binding:"required"`
	Description  string `form:"description" binding:"required"`
}

// CreatePrivate handles POST /v1/rooms/private — backend-provisioned College
// rooms, one per college.
func (h *RoomHandler) CreatePrivate(c *gin.Context) {
	var req createPrivateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "display image file is required")
		return
	}
	imageURL, ok := h.uploadDisplayImage(c, file)
	if !ok {
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), repository.CreateRoomParams{
		RoomType:     models.RoomTypeCollege,
		RoomName:     req.RoomName,
		RoomUsername: req.RoomUsername,
		Description:  req.Description,
		DisplayImage: imageURL,
	})
	if err != nil {
		h.logger.Error("failed to create college room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	respond(c, http.StatusCreated, gin.H{"room": room}, "Room created successfully")
}

type createPublicRoomRequest struct {
	RoomName    string   `form:"room_name" binding:"required"`
	Description string   `form:"description" binding:"required"`
	Tags        []string `form:"tags"`
}

// CreatePublic handles POST /v1/rooms/public — self-service User rooms.
// The one-room-per-admin and global-name invariants are enforced by unique
// indexes, so a conflicting insert fails atomically instead of racing a
// pre-check.
func (h *RoomHandler) CreatePublic(c *gin.Context) {
	var req createPublicRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	requesterID := middleware.GetUserID(c)
	profile, err := h.profiles.GetByUserID(c.Request.Context(), requesterID)
	if err != nil {
		h.logger.Error("failed to resolve creator profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "display image file is required")
		return
	}
	imageURL, ok := h.uploadDisplayImage(c, file)
	if !ok {
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), repository.CreateRoomParams{
		RoomType:       models.RoomTypeUser,
		RoomName:       req.RoomName,
		Description:    req.Description,
		DisplayImage:   imageURL,
		Tags:           req.Tags,
		AdminProfileID: &profile.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAdminRoom):
			respondError(c, http.StatusConflict, "you already have a public room created")
		case errors.Is(err, repository.ErrDuplicateRoomName):
			respondError(c, http.StatusConflict, "room with same name already exists")
		default:
			h.logger.Error("failed to create public room", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "failed to create room")
		}
		return
	}

	if err := h.memberships.Add(c.Request.Context(), requesterID, room.ID); err != nil {
		h.logger.Error("failed to join creator to room", zap.String("room_id", room.ID.String()), zap.Error(err))
	}

	respond(c, http.StatusCreated, gin.H{"room": room}, "Room created successfully")
}

type createAdminRoomRequest struct {
	RoomName     string   `form:"room_name" binding:"required"`
	RoomUsername string   `form:"room_username" binding:"required"`
	Description  string   `form:"description" binding:"required"`
	Tags         []string `form:"tags"`
}

// CreateAdmin handles POST /v1/rooms/admin-public — curated Admin rooms.
// Name uniqueness is enforced by the same index as User rooms; curators may
// administer several rooms, so the one-per-admin rule does not apply.
func (h *RoomHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	requesterID := middleware.GetUserID(c)
	profile, err := h.profiles.GetByUserID(c.Request.Context(), requesterID)
	if err != nil {
		h.logger.Error("failed to resolve creator profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "display image file is required")
		return
	}
	imageURL, ok := h.uploadDisplayImage(c, file)
	if !ok {
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), repository.CreateRoomParams{
		RoomType:       models.RoomTypeAdmin,
		RoomName:       req.RoomName,
		RoomUsername:   req.RoomUsername,
		Description:    req.Description,
		DisplayImage:   imageURL,
		Tags:           req.Tags,
		AdminProfileID: &profile.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRoomName) {
			respondError(c, http.StatusConflict, "room with same name already exists")
			return
		}
		h.logger.Error("failed to create admin room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	if err := h.memberships.Add(c.Request.Context(), requesterID, room.ID); err != nil {
		h.logger.Error("failed to join creator to room", zap.String("room_id", room.ID.String()), zap.Error(err))
	}

	respond(c, http.StatusCreated, gin.H{"room": room}, "Room created successfully")
}

type toggleJoinResponse struct {
	IsJoined bool `json:"is_joined"`
}

// ToggleJoin handles POST /v1/rooms/id/:roomId/toggle-join
func (h *RoomHandler) ToggleJoin(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if _, err := h.rooms.GetByID(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "room not found")
			return
		}
		h.logger.Error("failed to get room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to toggle join")
		return
	}

	requesterID := middleware.GetUserID(c)
	joined, err := h.memberships.Toggle(c.Request.Context(), requesterID, roomID)
	if err != nil {
		h.logger.Error("failed to toggle membership", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to toggle join")
		return
	}

	// The recent/trending lists exclude joined rooms, so the cached copies
	// are stale the moment a toggle lands.
	if h.roomLists != nil {
		h.roomLists.Invalidate(c.Request.Context(), requesterID)
	}

	message := "Room left successfully"
	if joined {
		message = "Room joined successfully"
	}
	respond(c, http.StatusOK, toggleJoinResponse{IsJoined: joined}, message)
}

// ListJoined handles GET /v1/rooms/joined
func (h *RoomHandler) ListJoined(c *gin.Context) {
	requesterID := middleware.GetUserID(c)

	rooms, err := h.rooms.ListJoined(c.Request.Context(), requesterID)
	if err != nil {
		h.logger.Error("failed to list joined rooms", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch joined rooms")
		return
	}

	respond(c, http.StatusOK, gin.H{"rooms": rooms}, "Joined rooms fetched successfully")
}

// ListPublic handles GET /v1/rooms/public?page=1&limit=10&search=
func (h *RoomHandler) ListPublic(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	requesterID := middleware.GetUserID(c)

	rows, total, err := h.rooms.ListPublic(c.Request.Context(), requesterID, c.Query("search"), params)
	if err != nil {
		h.logger.Error("failed to list public rooms", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch public rooms")
		return
	}

	respond(c, http.StatusOK, pagination.NewPage(rows, total, params), "Public rooms fetched successfully")
}

// ListCollege handles GET /v1/rooms/college?page=1&limit=10&search=
func (h *RoomHandler) ListCollege(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))

	rows, total, err := h.rooms.ListCollege(c.Request.Context(), c.Query("search"), params)
	if err != nil {
		h.logger.Error("failed to list college rooms", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch college rooms")
		return
	}

	respond(c, http.StatusOK, pagination.NewPage(rows, total, params), "College rooms fetched successfully")
}

// GetPrivate handles GET /v1/rooms/private — the requester's home room.
func (h *RoomHandler) GetPrivate(c *gin.Context) {
	requesterID := middleware.GetUserID(c)

	room, err := h.rooms.CollegeRoomFor(c.Request.Context(), requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "no college room assigned")
			return
		}
		h.logger.Error("failed to get private room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch private room")
		return
	}

	respond(c, http.StatusOK, gin.H{"room": room}, "Private room fetched successfully")
}

// GetDetails handles GET /v1/rooms/id/:roomId
func (h *RoomHandler) GetDetails(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := h.rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "room not found")
			return
		}
		h.logger.Error("failed to get room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch room")
		return
	}

	respond(c, http.StatusOK, room, "Room fetched successfully")
}

// roomProfileResponse adds the derived activity score to the stored totals.
type roomProfileResponse struct {
	models.RoomProfile
	ActivityScore float64 `json:"activity_score"`
}

// GetRoomProfile handles GET /v1/rooms/id/:roomId/profile
func (h *RoomHandler) GetRoomProfile(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	rp, err := h.rooms.GetProfile(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "room not found")
			return
		}
		h.logger.Error("failed to get room profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch room profile")
		return
	}

	resp := roomProfileResponse{
		RoomProfile:   *rp,
		ActivityScore: stats.ActivityScore(rp.TotalMessages, rp.TotalParticipants),
	}
	respond(c, http.StatusOK, resp, "Room profile fetched successfully")
}

// Recent handles GET /v1/rooms/recent
func (h *RoomHandler) Recent(c *gin.Context) {
	h.teaserList(c, cache.KindRecent, h.rooms.Recent, "Recently added rooms fetched successfully")
}

// Trending handles GET /v1/rooms/trending
func (h *RoomHandler) Trending(c *gin.Context) {
	h.teaserList(c, cache.KindTrending, h.rooms.Trending, "Trending rooms fetched successfully")
}

// teaserList serves the 4-room discovery teasers with a cache-aside read.
func (h *RoomHandler) teaserList(
	c *gin.Context,
	kind string,
	fetch func(ctx context.Context, requesterID uuid.UUID, limit int) ([]models.RoomRow, error),
	message string,
) {
	requesterID := middleware.GetUserID(c)

	if h.roomLists != nil {
		if rooms, ok := h.roomLists.Get(c.Request.Context(), kind, requesterID); ok {
			respond(c, http.StatusOK, gin.H{"rooms": rooms}, message)
			return
		}
	}

	rooms, err := fetch(c.Request.Context(), requesterID, recentTrendingLimit)
	if err != nil {
		h.logger.Error("failed to fetch room teaser list", zap.String("kind", kind), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch rooms")
		return
	}

	if h.roomLists != nil {
		h.roomLists.Set(c.Request.Context(), kind, requesterID, rooms)
	}
	respond(c, http.StatusOK, gin.H{"rooms": rooms}, message)
}
