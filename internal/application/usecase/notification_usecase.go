package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// NotificationUseCase casos de uso CRUD para notificaciones.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Create crea una notificación sin leer.
func (uc *NotificationUseCase) Create(ctx context.Context, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	now := time.Now()
	typ := in.Type
	if typ == "" {
		typ = entity.NotificationInfo
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Message:   in.Message,
		Type:      typ,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// GetByID obtiene una notificación.
func (uc *NotificationUseCase) GetByID(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNotificationResponse(n), nil
}

// Update actualiza una notificación.
func (uc *NotificationUseCase) Update(ctx context.Context, id string, in dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Message != nil {
		n.Message = *in.Message
	}
	if in.Type != nil {
		n.Type = *in.Type
	}
	if in.Read != nil {
		n.Read = *in.Read
	}
	n.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// List lista notificaciones, las más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
