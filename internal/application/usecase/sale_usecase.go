package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// SaleUseCase registro y consulta de ventas. No modifica el stock de los productos.
type SaleUseCase struct {
	repo     repository.SaleRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, clients repository.ClientRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, clients: clients, products: products, now: time.Now}
}

// Create registra una venta. Completa el nombre del producto, el total de cada línea
// (quantity × unit_price) y el total de la venta cuando no vienen informados;
// no rechaza totales que no cuadren.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.checkClient(ctx, in.ClientID); err != nil {
		return nil, err
	}
	items, err := uc.buildItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Date:      date,
		Items:     items,
		Total:     saleTotal(items, in.Total),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// Update corrige una venta existente.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != nil {
		if err := uc.checkClient(ctx, *in.ClientID); err != nil {
			return nil, err
		}
		sale.ClientID = *in.ClientID
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	if in.Items != nil {
		items, err := uc.buildItems(ctx, in.Items)
		if err != nil {
			return nil, err
		}
		sale.Items = items
		sale.Total = saleTotal(items, in.Total)
	} else if in.Total != nil {
		sale.Total = *in.Total
	}
	sale.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista ventas (más recientes primero) filtrando por rango de fechas y cliente.
func (uc *SaleUseCase) List(ctx context.Context, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	page := in.Page()
	filter := repository.SaleFilter{ClientID: in.ClientID}
	if in.StartDate != "" || in.EndDate != "" {
		// sin startDate la ventana abarca todo el histórico hasta endDate
		w, err := metrics.ResolveWindow(uc.now(), orEpoch(in.StartDate), in.EndDate, 0)
		if err != nil {
			return nil, err
		}
		filter.From, filter.To = w.From, w.To
	}
	list, err := uc.repo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete elimina una venta.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *SaleUseCase) checkClient(ctx context.Context, clientID string) error {
	c, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: el cliente %s no existe", domain.ErrInvalidInput, clientID)
	}
	return nil
}

func (uc *SaleUseCase) buildItems(ctx context.Context, in []dto.SaleItemRequest) ([]entity.SaleItem, error) {
	items := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
		}
		name := it.ProductName
		if name == "" {
			p, err := uc.products.GetByID(ctx, it.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, fmt.Errorf("%w: el producto %s no existe", domain.ErrInvalidInput, it.ProductID)
			}
			name = p.Name
		}
		total := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if it.Total != nil {
			total = *it.Total
		}
		items = append(items, entity.SaleItem{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       total,
		})
	}
	return items, nil
}

func saleTotal(items []entity.SaleItem, given *decimal.Decimal) decimal.Decimal {
	if given != nil {
		return *given
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}
	return total
}

func orEpoch(date string) string {
	if date == "" {
		return "1970-01-01"
	}
	return date
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		Date:      s.Date,
		Items:     items,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
