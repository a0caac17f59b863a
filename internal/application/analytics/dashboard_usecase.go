package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen del día y del mes en curso.
//
// Fuente de datos: repositorios de productos y ventas (consultas read-only).
type DashboardUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, sales repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, sales: sales, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. ventas de hoy          → TodaySales + TodayMargin
//  2. ventas del mes         → MonthlySales + MonthlyMargin + TopProducts
//  3. productos              → costo de las ventas + inventario
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	// Hoy: [00:00, 00:00 del día siguiente)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	// Mes en curso: día 1 a las 00:00 – fin de hoy
	monthStart := metrics.StartOfMonth(now)

	// ── Goroutines para paralelizar las 3 lecturas ────────────────────────────
	type salesResult struct {
		list []*entity.Sale
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}

	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		list, err := uc.sales.Find(ctx, repository.SaleFilter{From: todayStart, To: todayEnd})
		todayCh <- salesResult{list, err}
	}()
	go func() {
		list, err := uc.sales.Find(ctx, repository.SaleFilter{From: monthStart, To: todayEnd})
		monthCh <- salesResult{list, err}
	}()
	go func() {
		list, err := uc.products.Find(ctx, repository.ProductFilter{})
		productsCh <- productsResult{list, err}
	}()

	today := <-todayCh
	month := <-monthCh
	products := <-productsCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	byID := indexProducts(products.list)

	// ── Totales y márgenes ─────────────────────────────────────────────────────
	todayRev, todayCost := revenueAndCost(today.list, byID)
	monthRev, monthCost := revenueAndCost(month.list, byID)

	// ── Top productos del mes ──────────────────────────────────────────────────
	sold := aggregateByProduct(month.list, byID)
	top := make([]dto.TopProductDTO, 0, dashboardTopProducts)
	for _, id := range sold.ranked() {
		if len(top) == dashboardTopProducts {
			break
		}
		b, _ := sold.groups.Get(id)
		top = append(top, dto.TopProductDTO{
			ProductID:    id,
			ProductName:  sold.names[id],
			QuantitySold: b.Units,
			TotalRevenue: r2(b.Revenue),
			MarginPct:    r2(metrics.Percent(b.Profit(), b.Cost)),
		})
	}

	// ── Inventario ─────────────────────────────────────────────────────────────
	inventory := decimal.Zero
	lowStock := 0
	for _, p := range products.list {
		inventory = inventory.Add(p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock <= defaultLowStockThreshold {
			lowStock++
		}
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:       r2(todayRev),
		TodayMargin:      r2(todayRev.Sub(todayCost)),
		TodayOrders:      len(today.list),
		MonthlySales:     r2(monthRev),
		MonthlyMargin:    r2(monthRev.Sub(monthCost)),
		MonthlyOrders:    len(month.list),
		TopProducts:      top,
		InventoryValue:   r2(inventory),
		LowStockProducts: lowStock,
		DateLabel:        metrics.MonthLabel(now),
	}, nil
}

func revenueAndCost(sales []*entity.Sale, byID map[string]*entity.Product) (decimal.Decimal, decimal.Decimal) {
	revenue, cost := decimal.Zero, decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.Total)
		cost = cost.Add(saleCost(s, byID))
	}
	return revenue, cost
}
