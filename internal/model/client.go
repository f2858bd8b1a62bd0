package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is the institution (hospital, clinic, laboratory) that owns
// serviced equipment. Up to two contact emails receive reminder emails.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Email2    string    `json:"email2"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
