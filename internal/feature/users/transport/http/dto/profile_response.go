package dto

import (
	"time"

	"user_service/internal/feature/users/domain/entity"
)

// NestedAddress is an address as embedded in a profile response. The
// back-reference to the profile is omitted to break the cycle.
type NestedAddress struct {
	ID         uint   `json:"id"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// ProfileResponse is the response body for profile reads. Timestamps
// serialize as RFC 3339 with offset; updatedAt is null until the first
// edit.
type ProfileResponse struct {
	ID          uint            `json:"id"`
	AuthUserID  string          `json:"authUserId"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
	Addresses   []NestedAddress `json:"addresses"`
}

// NewProfileResponse maps a profile aggregate onto its wire shape. The
// addresses array is always present, never null.
func NewProfileResponse(p *entity.UserProfile) ProfileResponse {
	addresses := make([]NestedAddress, 0, len(p.Addresses))
	for _, a := range p.Addresses {
		addresses = append(addresses, NestedAddress{
			ID:         a.ID,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			Country:    a.Country,
			PostalCode: a.PostalCode,
			IsDefault:  a.IsDefault,
		})
	}
	return ProfileResponse{
		ID:          p.ID,
		AuthUserID:  p.AuthUserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Addresses:   addresses,
	}
}
