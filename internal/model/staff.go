package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffUser is an internal employee. Users with ReceiveWarrantyEmails set
// are copied on every reminder email the engine sends.
type StaffUser struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	ReceiveWarrantyEmails bool      `json:"receive_warranty_emails"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
