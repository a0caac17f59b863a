package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Address string `json:"address" validate:"max=300"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=40"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
