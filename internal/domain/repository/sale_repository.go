package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SaleFilter criterios de búsqueda de ventas. El rango de fechas es semiabierto [From, To);
// un tiempo cero deja ese extremo sin límite.
type SaleFilter struct {
	From      time.Time
	To        time.Time
	ClientID  string
	ProductID string // ventas con al menos una línea de este producto
}

// SaleRepository define el puerto de persistencia para Sale (líneas embebidas).
//
// List pagina ordenando por fecha descendente; Find y FindWithClient devuelven
// todas las coincidencias en orden cronológico (las usan los reportes).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	Find(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	FindWithClient(ctx context.Context, filter SaleFilter) ([]*entity.SaleWithClient, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
