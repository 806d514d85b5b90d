package models

import "time"

// MaintenanceStatus is the payment state of a maintenance record.
type MaintenanceStatus string

const (
	MaintenancePaid   MaintenanceStatus = "PAID"
	MaintenanceUnpaid MaintenanceStatus = "UNPAID"
)

// MaintenanceRecord is a monthly maintenance bill raised against a flat.
type MaintenanceRecord struct {
	ID     string            `json:"id"`
	FlatID string            `json:"flatId"`
	Month  string            `json:"month"`
	Amount float64           `json:"amount"`
	Status MaintenanceStatus `json:"status"`
	PaidAt *time.Time        `json:"paidAt,omitempty"`
}

func (m MaintenanceRecord) GetID() string { return m.ID }

// NewMaintenanceRecord is the body of POST /maintenance.
type NewMaintenanceRecord struct {
	FlatID string  `json:"flatId"`
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
