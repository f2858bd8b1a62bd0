package model

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is one installed or serviced device. InvoiceDate is kept as the
// raw string the registry received: legacy records arrive either as
// YYYY-MM-DD or DD/MM/YYYY, and some have no invoice date at all. Equipment
// without a parseable invoice date is excluded from all reminder scheduling.
type Equipment struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
	InvoiceDate  string    `json:"invoice_date"`
	InstallType  string    `json:"install_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EquipmentWithClient pairs a device with its owning client, as read by the
// reminder engine in a single listing pass.
type EquipmentWithClient struct {
	Equipment Equipment `json:"equipment"`
	Client    Client    `json:"client"`
}
