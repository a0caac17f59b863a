package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

var notificationSelect = psql.Select("id", "title", "message", "type", "read", "created_at", "updated_at").
	From("notifications")

func scanNotification(row scanner) (*entity.Notification, error) {
	var n entity.Notification
	if err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	b := psql.Insert("notifications").
		Columns("id", "title", "message", "type", "read", "created_at", "updated_at").
		Values(n.ID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt, n.UpdatedAt)
	if err := insert(ctx, r.q, b); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := queryOne(ctx, r.q, notificationSelect.Where(sq.Eq{"id": id}), scanNotification)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// List más recientes primero.
func (r *NotificationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	b := page(notificationSelect.OrderBy("created_at DESC", "id"), limit, offset)
	list, err := queryAll(ctx, r.q, b, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (r *NotificationRepo) Update(ctx context.Context, n *entity.Notification) error {
	b := psql.Update("notifications").SetMap(map[string]any{
		"title":      n.Title,
		"message":    n.Message,
		"type":       n.Type,
		"read":       n.Read,
		"updated_at": n.UpdatedAt,
	}).Where(sq.Eq{"id": n.ID})
	if err := execOne(ctx, r.q, b); err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	if err := execOne(ctx, r.q, psql.Delete("notifications").Where(sq.Eq{"id": id})); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
