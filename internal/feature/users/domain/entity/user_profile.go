// Package entity defines the domain entities for the users feature.
package entity

import "time"

// UserProfile represents a user-directory record. Authoritative
// identity lives in the external auth service; this record keeps only
// an opaque reference to it plus contact data.
type UserProfile struct {
	// ID is the unique identifier for the profile.
	ID uint `gorm:"primaryKey" json:"id"`

	// AuthUserID references the user in the external auth service.
	// There is no foreign key behind it.
	AuthUserID string `gorm:"column:auth_user_id;size:64;not null" json:"authUserId"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`

	// Email must be unique across all profiles, matched as stored.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	PhoneNumber string `gorm:"size:20" json:"phoneNumber"`

	// CreatedAt is set once by the service layer on creation.
	// UpdatedAt stays nil until the first successful edit. GORM's
	// automatic tracking is disabled so the service owns both.
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`

	// Addresses is the materialized aggregate. Deleting a profile
	// cascades to its addresses at the database level.
	Addresses []UserAddress `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE" json:"addresses"`
}

// TableName keeps the table name aligned with the platform schema.
func (UserProfile) TableName() string { return "user_profile" }
