package model

// ScheduleEntry is one upcoming reminder date for a piece of equipment.
type ScheduleEntry struct {
	Label string `json:"label"`
	Date  string `json:"date"` // DD/MM/YYYY display format
	Sent  bool   `json:"sent"` // warranty milestones only
}

// Schedule is the computed reminder calendar for one piece of equipment,
// served by the admin API as a preview of what the engine will send.
type Schedule struct {
	EquipmentID        string          `json:"equipment_id"`
	InvoiceDate        string          `json:"invoice_date"`
	WarrantyMilestones []ScheduleEntry `json:"warranty_milestones"`
	Maintenance        []ScheduleEntry `json:"maintenance"`
	WarrantyEnds       string          `json:"warranty_ends"`
}
