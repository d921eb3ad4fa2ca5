package dto

import "user_service/internal/feature/users/domain/entity"

// ProfileRef identifies the owning profile in an address request.
type ProfileRef struct {
	ID uint `json:"id"`
}

// AddressRequest is the request body for creating or editing a user
// address. The userProfile reference is validated by the service so
// its dedicated messages are preserved; isDefault is a pointer so a
// missing field is distinguishable from false.
type AddressRequest struct {
	UserProfile *ProfileRef `json:"userProfile"`
	Line1       string      `json:"line1" binding:"required,max=255"`
	Line2       string      `json:"line2" binding:"omitempty,max=255"`
	City        string      `json:"city" binding:"required,max=100"`
	State       string      `json:"state" binding:"omitempty,max=100"`
	Country     string      `json:"country" binding:"required,max=100"`
	PostalCode  string      `json:"postalCode" binding:"omitempty,max=20"`
	IsDefault   *bool       `json:"isDefault" binding:"required"`
}

// ToEntity maps the request onto a fresh address entity.
func (r AddressRequest) ToEntity() *entity.UserAddress {
	a := &entity.UserAddress{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		PostalCode: r.PostalCode,
	}
	if r.UserProfile != nil {
		a.UserProfileID = r.UserProfile.ID
	}
	if r.IsDefault != nil {
		a.IsDefault = *r.IsDefault
	}
	return a
}
