package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationAlert   = "alert"
)

// Notification aviso interno del back-office.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
