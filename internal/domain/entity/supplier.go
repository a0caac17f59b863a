package entity

import "time"

// Supplier proveedor; no participa en la analítica.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
