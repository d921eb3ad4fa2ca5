package dto

import (
	"time"

	"user_service/internal/feature/users/domain/entity"
)

// OwnerProfile is the owning profile as embedded in an address
// response. Its addresses are omitted to break the cycle.
type OwnerProfile struct {
	ID          uint       `json:"id"`
	AuthUserID  string     `json:"authUserId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// AddressResponse is the response body for address reads.
type AddressResponse struct {
	ID          uint         `json:"id"`
	UserProfile OwnerProfile `json:"userProfile"`
	Line1       string       `json:"line1"`
	Line2       string       `json:"line2"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	PostalCode  string       `json:"postalCode"`
	IsDefault   bool         `json:"isDefault"`
}

// NewAddressResponse maps an address and its owning profile onto the
// wire shape.
func NewAddressResponse(a entity.UserAddress, p entity.UserProfile) AddressResponse {
	return AddressResponse{
		ID: a.ID,
		UserProfile: OwnerProfile{
			ID:          p.ID,
			AuthUserID:  p.AuthUserID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			PhoneNumber: p.PhoneNumber,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		},
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		IsDefault:  a.IsDefault,
	}
}
