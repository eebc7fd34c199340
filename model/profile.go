package model

import "time"

// Address is stored as a JSON column and decoded defensively: a missing or
// malformed column yields the zero value, never a nil shape.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SocialLinks is stored as a JSON column, same decoding rules as Address.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

type Profile struct {
	UserID       uint64      `json:"user_id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Phone        string      `json:"phone"`
	AvatarURL    string      `json:"avatar_url"`
	Bio          string      `json:"bio"`
	BirthDate    string      `json:"birth_date"`
	Gender       string      `json:"gender"`
	Occupation   string      `json:"occupation"`
	Address      Address     `json:"address"`
	Website      string      `json:"website"`
	SocialLinks  SocialLinks `json:"social_links"`
	PrivacyLevel string      `json:"privacy_level"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`

	// Derived on every read, never persisted.
	Completeness int `json:"completeness"`
}

// UpdateProfileRequest mirrors the editable profile fields.
type UpdateProfileRequest struct {
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Phone        string      `json:"phone"`
	AvatarURL    string      `json:"avatar_url"`
	Bio          string      `json:"bio"`
	BirthDate    string      `json:"birth_date"`
	Gender       string      `json:"gender"`
	Occupation   string      `json:"occupation"`
	Address      Address     `json:"address"`
	Website      string      `json:"website"`
	SocialLinks  SocialLinks `json:"social_links"`
	PrivacyLevel string      `json:"privacy_level" validate:"omitempty,oneof=public private friends_only"`
}
