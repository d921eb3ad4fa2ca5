package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/transport/http/dto"
	"user_service/internal/shared/apperror"
)

// ProfileUsecase defines the profile operations the handler needs.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type ProfileUsecase interface {
	CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (string, error)
	GetUserProfile(ctx context.Context, id uint) (*entity.UserProfile, error)
	GetAllUserProfiles(ctx context.Context) ([]entity.UserProfile, error)
	EditUserProfile(ctx context.Context, id uint, profile *entity.UserProfile) (string, error)
	RemoveUserProfile(ctx context.Context, id uint) (string, error)
}

// ProfileHandler handles HTTP requests for user profiles. Reads answer
// JSON; writes answer the service's plain-text confirmation.
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler creates a ProfileHandler. Constructor for
// dependency injection.
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetAll handles GET /userProfile/getAllUsers.
func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.uc.GetAllUserProfiles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewProfileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /userProfile/createUser.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create profile validation failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, apperror.InvalidArgument("%s", err.Error()))
		return
	}
	msg, err := h.uc.CreateUserProfile(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// Get handles GET /userProfile/getUser/{id}.
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	profile, err := h.uc.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// Edit handles PUT /userProfile/editUser/{id}.
func (h *ProfileHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit profile validation failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, apperror.InvalidArgument("%s", err.Error()))
		return
	}
	msg, err := h.uc.EditUserProfile(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// Remove handles DELETE /userProfile/removeUserProfile/{id}.
func (h *ProfileHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.uc.RemoveUserProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}
