package entity

import "time"

// Client representa un cliente que compra (referenciado por Sale).
type Client struct {
	ID        string
	Name      string // nombre completo
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
