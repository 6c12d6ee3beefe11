package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vikascc28/gossip-camp-backend/internal/auth"
	"github.com/vikascc28/gossip-camp-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthHandler owns the two public endpoints. Signup creates the User, its
// Profile, and — when the college already has its private room provisioned —
// links and joins it, so the home-room pointer is valid from day one.
type AuthHandler struct {
	users       repository.UserRepository
	profiles    repository.ProfileRepository
	rooms       repository.RoomRepository
	memberships repository.MembershipRepository
	jwtSecret   string
	logger      *zap.Logger
}

func NewAuthHandler(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	rooms repository.RoomRepository,
	memberships repository.MembershipRepository,
	jwtSecret string,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:       users,
		profiles:    profiles,
		rooms:       rooms,
		memberships: memberships,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

type signupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CollegeName string `json:"college_name" binding:"required"`
	FName       string `json:"f_name" binding:"required"`
	LName       string `json:"l_name" binding:"required"`
	Username    string `json:"username" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "signup failed")
		return
	}

	user, err := h.users.Create(c.Request.Context(), repository.CreateUserParams{
		Email:        req.Email,
		PasswordHash: string(hash),
		CollegeName:  req.CollegeName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, "email already registered")
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "signup failed")
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), repository.CreateProfileParams{
		UserID:   user.ID,
		FName:    req.FName,
		LName:    req.LName,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			respondError(c, http.StatusConflict, "username already taken")
			return
		}
		h.logger.Error("failed to create profile", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "signup failed")
		return
	}

	// Link the college's private room if it has been provisioned. Failure
	// here must not fail signup; the pointer can be repaired later.
	if room, err := h.rooms.GetCollegeRoomByName(c.Request.Context(), user.CollegeName); err == nil {
		if err := h.users.SetCollegeRoom(c.Request.Context(), user.ID, room.ID); err != nil {
			h.logger.Warn("failed to link college room", zap.String("college", user.CollegeName), zap.Error(err))
		} else if err := h.memberships.Add(c.Request.Context(), user.ID, room.ID); err != nil {
			h.logger.Warn("failed to join college room", zap.String("college", user.CollegeName), zap.Error(err))
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.logger.Warn("college room lookup failed", zap.String("college", user.CollegeName), zap.Error(err))
	}

	token, err := auth.GenerateToken(user.ID, profile.ID, user.Email, h.jwtSecret, tokenTTL)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "signup failed")
		return
	}

	respond(c, http.StatusCreated, authResponse{Token: token}, "Account created successfully")
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// One message for both unknown email and wrong password, so the
		// endpoint doesn't reveal which emails are registered.
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("failed to find user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	profile, err := h.profiles.GetByUserID(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to load profile for login", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := auth.GenerateToken(user.ID, profile.ID, user.Email, h.jwtSecret, tokenTTL)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	respond(c, http.StatusOK, authResponse{Token: token}, "Logged in successfully")
}
