package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/transport/http/dto"
	"user_service/internal/feature/users/usecase"
	"user_service/internal/shared/apperror"
)

// AddressUsecase defines the address operations the handler needs.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type AddressUsecase interface {
	CreateUserAddress(ctx context.Context, address *entity.UserAddress) (string, error)
	GetUserAddress(ctx context.Context, id uint) (*usecase.AddressView, error)
	GetAllUserAddresses(ctx context.Context) ([]usecase.AddressView, error)
	EditUserAddress(ctx context.Context, id uint, address *entity.UserAddress) (string, error)
	RemoveUserAddress(ctx context.Context, id uint) (string, error)
}

// AddressHandler handles HTTP requests for user addresses.
type AddressHandler struct {
	uc AddressUsecase
}

// NewAddressHandler creates an AddressHandler. Constructor for
// dependency injection.
func NewAddressHandler(uc AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// GetAll handles GET /userAddress/getAllUsers.
func (h *AddressHandler) GetAll(c *gin.Context) {
	views, err := h.uc.GetAllUserAddresses(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.AddressResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.NewAddressResponse(v.Address, v.Profile))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /userAddress/createUserAddress.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create address validation failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, apperror.InvalidArgument("%s", err.Error()))
		return
	}
	msg, err := h.uc.CreateUserAddress(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// Get handles GET /userAddress/getUser/{id}.
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.uc.GetUserAddress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressResponse(view.Address, view.Profile))
}

// Edit handles PUT /userAddress/editUser/{id}.
func (h *AddressHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit address validation failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, apperror.InvalidArgument("%s", err.Error()))
		return
	}
	msg, err := h.uc.EditUserAddress(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// Remove handles DELETE /userAddress/removeUserAddress/{id}.
func (h *AddressHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.uc.RemoveUserAddress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}
