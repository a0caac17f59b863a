package entity

import "time"

// Catalog colección publicada de productos.
type Catalog struct {
	ID          string
	Name        string
	Description string
	ProductIDs  []string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
