package dto

// ClientRequest is the payload for creating or updating a client.
type ClientRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Email2 string `json:"email2" validate:"omitempty,email"`
}

// EquipmentRequest is the payload for creating or updating equipment.
// InvoiceDate accepts YYYY-MM-DD or DD/MM/YYYY; it may be empty for
// equipment that is not under a warranty clock yet.
type EquipmentRequest struct {
	ClientID     string `json:"client_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	InvoiceDate  string `json:"invoice_date"`
	InstallType  string `json:"install_type"`
}

// StaffUserRequest is the payload for creating or updating a staff user.
type StaffUserRequest struct {
	Name                  string `json:"name" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	ReceiveWarrantyEmails bool   `json:"receive_warranty_emails"`
}
