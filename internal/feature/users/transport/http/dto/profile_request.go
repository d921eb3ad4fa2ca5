// Package dto defines data transfer objects for the users feature's
// HTTP transport layer. Wire types are distinct from storage types:
// request DTOs carry no server-assigned fields (id, createdAt,
// updatedAt), so clients cannot set ids on create or mutate timestamps
// on edit.
package dto

import "user_service/internal/feature/users/domain/entity"

// ProfileRequest is the request body for creating or editing a user
// profile. Gin's binding tags enforce presence and length; email
// presence is checked by the service so its dedicated message is
// preserved.
type ProfileRequest struct {
	AuthUserID  string `json:"authUserId" binding:"required,max=64"`
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Email       string `json:"email" binding:"omitempty,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
}

// ToEntity maps the request onto a fresh profile entity.
func (r ProfileRequest) ToEntity() *entity.UserProfile {
	return &entity.UserProfile{
		AuthUserID:  r.AuthUserID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
