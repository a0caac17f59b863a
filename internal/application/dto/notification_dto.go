package dto

import "time"

// CreateNotificationRequest entrada para crear una notificación. Type por defecto "info".
type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Type    string `json:"type" validate:"omitempty,oneof=info warning alert"`
}

// UpdateNotificationRequest entrada para actualizar una notificación (p. ej. marcar como leída).
type UpdateNotificationRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
	Type    *string `json:"type" validate:"omitempty,oneof=info warning alert"`
	Read    *bool   `json:"read"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationListResponse lista paginada de notificaciones.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
