package entity

// UserAddress is a postal address owned by exactly one profile. The
// relation is stored as the parent id on the child; the entity never
// carries a back-pointer to the profile, the JSON boundary composes
// one where needed.
type UserAddress struct {
	// ID is the unique identifier for the address.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserProfileID is the owning profile. Immutable through the
	// public API once the address is created.
	UserProfileID uint `gorm:"column:user_profile_id;not null;index" json:"userProfileId"`

	Line1 string `gorm:"size:255;not null" json:"line1"`
	Line2 string `gorm:"size:255" json:"line2"`
	City  string `gorm:"size:100;not null" json:"city"`
	State string `gorm:"size:100" json:"state"`

	Country string `gorm:"size:100;not null" json:"country"`

	// PostalCode is a string so leading zeros and non-numeric codes
	// survive round-trips.
	PostalCode string `gorm:"size:20" json:"postalCode"`

	IsDefault bool `gorm:"column:is_default;not null" json:"isDefault"`
}

// TableName keeps the table name aligned with the platform schema.
func (UserAddress) TableName() string { return "user_address" }
