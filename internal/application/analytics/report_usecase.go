// Package analytics contiene los casos de uso de los reportes de negocio (/api/business),
// el Dashboard y las exportaciones.
//
// Todos los reportes siguen la misma forma: resolver la ventana y el alcance, leer el
// conjunto de registros, acumular por grupo con metrics.Groups, derivar los ratios con
// divisiones protegidas, ordenar, truncar y devolver el DTO con período, resumen y detalle.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Valores por defecto de cada reporte.
const (
	defaultLowStockThreshold = 10
	defaultMarginLimit       = 20
	defaultTopLimit          = 10
	defaultCrossSellLimit    = 20

	rotationDays      = 30
	abcDays           = 365
	forecastHorizon   = 30
	deadStockDays     = 90
	salesDays         = 30
	weekdayDays       = 90
	crossSellDays     = 90
	topClientsDays    = 365
	retentionMonths   = 6
	categoryPerfDays  = 30
	scenarioDays      = 30
	uncategorizedName = "Sin categoría"
)

// Sources repositorios de lectura que consumen los reportes.
type Sources struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Clients    repository.ClientRepository
	Sales      repository.SaleRepository
}

// ReportUseCase genera los reportes de /api/business. No guarda estado entre llamadas.
type ReportUseCase struct {
	src Sources
	now func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(src Sources) *ReportUseCase {
	return &ReportUseCase{src: src, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// ── Ventanas ──────────────────────────────────────────────────────────────────

func (uc *ReportUseCase) window(q dto.ReportQuery, defDays int) (metrics.Window, error) {
	days := defDays
	if q.Days > 0 {
		days = q.Days
	}
	return metrics.ResolveWindow(uc.now(), q.StartDate, q.EndDate, days)
}

func periodOf(w metrics.Window) dto.PeriodDTO {
	return dto.PeriodDTO{StartDate: w.StartDate(), EndDate: w.EndDate(), Days: w.Days()}
}

func limitOr(limit, def int) int {
	if limit > 0 {
		return limit
	}
	return def
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// snapshot registros leídos para un reporte.
type snapshot struct {
	products []*entity.Product
	byID     map[string]*entity.Product
	sales    []*entity.Sale
}

// load lee productos y ventas en paralelo.
func (uc *ReportUseCase) load(ctx context.Context, pf repository.ProductFilter, sf repository.SaleFilter) (*snapshot, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type salesResult struct {
		list []*entity.Sale
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.src.Products.Find(ctx, pf)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.src.Sales.Find(ctx, sf)
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	if products.err != nil {
		return nil, fmt.Errorf("leer productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("leer ventas: %w", sales.err)
	}
	return &snapshot{products: products.list, byID: indexProducts(products.list), sales: sales.list}, nil
}

// loadSales lee solo ventas.
func (uc *ReportUseCase) loadSales(ctx context.Context, sf repository.SaleFilter) ([]*entity.Sale, error) {
	sales, err := uc.src.Sales.Find(ctx, sf)
	if err != nil {
		return nil, fmt.Errorf("leer ventas: %w", err)
	}
	return sales, nil
}

func (uc *ReportUseCase) product(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.src.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	return p, nil
}

func (uc *ReportUseCase) categoryNames(ctx context.Context) (map[string]string, []*entity.Category, error) {
	list, err := uc.src.Categories.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("leer categorías: %w", err)
	}
	names := make(map[string]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, list, nil
}

// productsWithCategory productos con la categoría resuelta por el repositorio (join).
func (uc *ReportUseCase) productsWithCategory(ctx context.Context, f repository.ProductFilter) ([]*entity.ProductWithCategory, error) {
	list, err := uc.src.Products.ListWithCategory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("leer productos: %w", err)
	}
	return list, nil
}

// categoryOf clave de agrupación y nombre visible; "" y "Sin categoría" si no tiene.
func categoryOf(p *entity.ProductWithCategory) (string, string) {
	if p.Category == nil {
		return "", uncategorizedName
	}
	return p.Category.ID, p.Category.Name
}

func indexProducts(list []*entity.Product) map[string]*entity.Product {
	m := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		m[p.ID] = p
	}
	return m
}

func salesIn(w metrics.Window) repository.SaleFilter {
	return repository.SaleFilter{From: w.From, To: w.To}
}

// ── Acumulación por producto ──────────────────────────────────────────────────

// productSales ventas acumuladas por producto. El costo usa el precio de compra actual.
type productSales struct {
	groups *metrics.Groups[string]
	names  map[string]string
}

func aggregateByProduct(sales []*entity.Sale, byID map[string]*entity.Product) productSales {
	ps := productSales{groups: metrics.NewGroups[string](), names: map[string]string{}}
	for _, s := range sales {
		for _, it := range s.Items {
			ps.groups.At(it.ProductID).Observe(it.Quantity, it.Total, itemCost(it, byID))
			if _, ok := ps.names[it.ProductID]; !ok {
				ps.names[it.ProductID] = it.ProductName
			}
		}
	}
	for id, p := range byID {
		ps.names[id] = p.Name
	}
	return ps
}

func (ps productSales) units(id string) int {
	if b, ok := ps.groups.Get(id); ok {
		return b.Units
	}
	return 0
}

// ranked claves ordenadas por ingreso descendente (empates por clave).
func (ps productSales) ranked() []string {
	keys := ps.groups.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		a, _ := ps.groups.Get(keys[i])
		b, _ := ps.groups.Get(keys[j])
		if c := a.Revenue.Cmp(b.Revenue); c != 0 {
			return c > 0
		}
		return keys[i] < keys[j]
	})
	return keys
}

func itemCost(it entity.SaleItem, byID map[string]*entity.Product) decimal.Decimal {
	p, ok := byID[it.ProductID]
	if !ok {
		return decimal.Zero
	}
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func saleCost(s *entity.Sale, byID map[string]*entity.Product) decimal.Decimal {
	cost := decimal.Zero
	for _, it := range s.Items {
		cost = cost.Add(itemCost(it, byID))
	}
	return cost
}

// ── Resumen de ventas ─────────────────────────────────────────────────────────

func summarizeSales(sales []*entity.Sale) dto.SalesSummaryDTO {
	var b metrics.Bucket
	clients := map[string]struct{}{}
	for _, s := range sales {
		b.Observe(s.Units(), s.Total, decimal.Zero)
		if s.ClientID != "" {
			clients[s.ClientID] = struct{}{}
		}
	}
	return dto.SalesSummaryDTO{
		Sales:         b.Count,
		UnitsSold:     b.Units,
		Revenue:       r2(b.Revenue),
		AverageSale:   r2(b.Average()),
		MinSale:       r2(b.Min),
		MaxSale:       r2(b.Max),
		UniqueClients: len(clients),
	}
}

func bucketDTO(key, label string, b *metrics.Bucket) dto.SalesBucketDTO {
	return dto.SalesBucketDTO{
		Key:         key,
		Label:       label,
		Sales:       b.Count,
		UnitsSold:   b.Units,
		Revenue:     r2(b.Revenue),
		AverageSale: r2(b.Average()),
	}
}

func r2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func categoryLabel(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return uncategorizedName
}
