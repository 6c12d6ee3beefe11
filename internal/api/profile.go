package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikascc28/gossip-camp-backend/internal/middleware"
	"github.com/vikascc28/gossip-camp-backend/internal/models"
	"github.com/vikascc28/gossip-camp-backend/internal/pagination"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
	"github.com/vikascc28/gossip-camp-backend/internal/stats"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profiles repository.ProfileRepository
	follows  repository.FollowRepository
	logger   *zap.Logger
}

func NewProfileHandler(profiles repository.ProfileRepository, follows repository.FollowRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, follows: follows, logger: logger}
}

// List handles GET /v1/profiles?page=1&limit=10&search=
func (h *ProfileHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	requesterID := middleware.GetUserID(c)

	rows, total, err := h.profiles.List(c.Request.Context(), requesterID, c.Query("search"), params)
	if err != nil {
		h.logger.Error("failed to list profiles", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch profiles")
		return
	}

	respond(c, http.StatusOK, pagination.NewPage(rows, total, params), "Profiles fetched successfully")
}

// profileDetailResponse flattens the stored row and the derived scores into
// one JSON object, matching what the profile page renders.
type profileDetailResponse struct {
	models.ProfileDetail
	stats.Summary
}

// Get handles GET /v1/profiles/:username
func (h *ProfileHandler) Get(c *gin.Context) {
	requesterID := middleware.GetUserID(c)

	detail, err := h.profiles.GetDetailByUsername(c.Request.Context(), c.Param("username"), requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error("failed to get profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	resp := profileDetailResponse{
		ProfileDetail: *detail,
		Summary:       stats.Generate(detail.Followers, detail.Messages),
	}
	respond(c, http.StatusOK, resp, "Profile fetched successfully")
}

type toggleFollowResponse struct {
	IsFollowing bool `json:"is_following"`
}

// ToggleFollow handles POST /v1/profiles/:username/toggle-follow
func (h *ProfileHandler) ToggleFollow(c *gin.Context) {
	requesterID := middleware.GetUserID(c)

	target, err := h.profiles.GetDetailByUsername(c.Request.Context(), c.Param("username"), requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error("failed to resolve profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to toggle follow")
		return
	}

	if target.UserID == requesterID {
		respondError(c, http.StatusBadRequest, "cannot follow yourself")
		return
	}

	following, err := h.follows.Toggle(c.Request.Context(), requesterID, target.UserID)
	if err != nil {
		h.logger.Error("failed to toggle follow", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to toggle follow")
		return
	}

	message := "Unfollowed successfully"
	if following {
		message = "Followed successfully"
	}
	respond(c, http.StatusOK, toggleFollowResponse{IsFollowing: following}, message)
}
