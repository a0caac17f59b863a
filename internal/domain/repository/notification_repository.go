package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
// List devuelve las más recientes primero.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	Delete(ctx context.Context, id string) error
}
