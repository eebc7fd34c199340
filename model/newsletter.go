package model

import "time"

type NewsletterSubscriber struct {
	ID         uint64     `db:"id" json:"id"`
	Email      string     `db:"email" json:"email"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	WelcomedAt *time.Time `db:"welcomed_at" json:"welcomed_at,omitempty"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewsletterSubscribeResponse struct {
	Email string `json:"email"`
}
