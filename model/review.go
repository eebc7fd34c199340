package model

import "time"

// Review carries the minimal user display fields joined from the user table.
type Review struct {
	ID        uint64    `json:"id"`
	ProductID uint64    `json:"product_id"`
	UserID    uint64    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	User      *ReviewUser `json:"user,omitempty"`
}

type ReviewUser struct {
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}
