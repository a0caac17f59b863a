package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/memory"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func item(productID string, qty int, unit int64) entity.SaleItem {
	price := decimal.NewFromInt(unit)
	return entity.SaleItem{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: price,
		Total:     price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// seed carga un catálogo pequeño:
//
//	p1 Café  15/10 stock 20 (Bebidas)
//	p2 Agua   5/2  stock 3  (Bebidas)
//	p3 Pan    4/4  stock 0  (sin categoría)
//	p4 Té     8/5  stock 50 (Bebidas, nunca vendido)
//
// y tres ventas de 100, 200 y 300 de dos clientes en la última semana.
func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	for _, c := range []*entity.Category{
		{ID: "c1", Name: "Bebidas"},
		{ID: "c2", Name: "Panadería"},
	} {
		require.NoError(t, store.Categories().Create(ctx, c))
	}
	for _, p := range []*entity.Product{
		{ID: "p1", Name: "Café", CategoryID: "c1", SalePrice: decimal.NewFromInt(15), PurchasePrice: decimal.NewFromInt(10), Stock: 20},
		{ID: "p2", Name: "Agua", CategoryID: "c1", SalePrice: decimal.NewFromInt(5), PurchasePrice: decimal.NewFromInt(2), Stock: 3},
		{ID: "p3", Name: "Pan", SalePrice: decimal.NewFromInt(4), PurchasePrice: decimal.NewFromInt(4), Stock: 0},
		{ID: "p4", Name: "Té", CategoryID: "c1", SalePrice: decimal.NewFromInt(8), PurchasePrice: decimal.NewFromInt(5), Stock: 50},
	} {
		require.NoError(t, store.Products().Create(ctx, p))
	}
	for _, c := range []*entity.Client{
		{ID: "cl1", Name: "Ana"},
		{ID: "cl2", Name: "Luis"},
		{ID: "cl3", Name: "Marta"},
	} {
		require.NoError(t, store.Clients().Create(ctx, c))
	}
	for _, s := range []*entity.Sale{
		{ID: "s1", ClientID: "cl1", Date: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), Items: []entity.SaleItem{item("p1", 2, 15), item("p2", 14, 5)}, Total: decimal.NewFromInt(100)},
		{ID: "s2", ClientID: "cl2", Date: time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC), Items: []entity.SaleItem{item("p1", 10, 15), item("p2", 10, 5)}, Total: decimal.NewFromInt(200)},
		{ID: "s3", ClientID: "cl1", Date: time.Date(2026, 3, 14, 9, 10, 0, 0, time.UTC), Items: []entity.SaleItem{item("p1", 20, 15)}, Total: decimal.NewFromInt(300)},
	} {
		require.NoError(t, store.Sales().Create(ctx, s))
	}
	return store
}

func newReports(store *memory.Store) *analytics.ReportUseCase {
	return analytics.NewReportUseCase(analytics.Sources{
		Products:   store.Products(),
		Categories: store.Categories(),
		Clients:    store.Clients(),
		Sales:      store.Sales(),
	}).WithClock(clock)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func TestProductProfit(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.ProductProfit(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "5.00", money(got.Profit))
	assert.Equal(t, "50.00%", got.ProfitMargin)

	_, err = uc.ProductProfit(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryValue_IncluyeCategoriasVacias(t *testing.T) {
	got, err := newReports(seed(t)).InventoryValue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "456.00", money(got.Summary.CostValue))
	assert.Equal(t, "715.00", money(got.Summary.SaleValue))
	assert.Equal(t, "259.00", money(got.Summary.PotentialProfit))

	require.Len(t, got.Categories, 3)
	assert.Equal(t, "Bebidas", got.Categories[0].CategoryName)
	assert.Equal(t, 3, got.Categories[0].Products)
	assert.Equal(t, "Panadería", got.Categories[1].CategoryName)
	assert.Equal(t, 0, got.Categories[1].Products)
	assert.Equal(t, "Sin categoría", got.Categories[2].CategoryName)
}

func TestProfitMargins_OrdenYLimite(t *testing.T) {
	got, err := newReports(seed(t)).ProfitMargins(context.Background(), dto.ReportQuery{Limit: 2})
	require.NoError(t, err)

	require.Len(t, got.Products, 2)
	assert.Equal(t, "p2", got.Products[0].ProductID, "150% de margen")
	assert.Equal(t, "p4", got.Products[1].ProductID, "60% de margen")
	assert.Equal(t, 4, got.Summary.Products)
	assert.Equal(t, 0, got.Summary.NegativeCount)
}

func TestLowStock_UmbralPorDefecto(t *testing.T) {
	got, err := newReports(seed(t)).LowStock(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 10, got.Threshold)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p3", got.Products[0].ProductID)
	assert.Equal(t, "p2", got.Products[1].ProductID)
}

func TestDeadStock(t *testing.T) {
	got, err := newReports(seed(t)).DeadStock(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, "p4", got.Products[0].ProductID)
	assert.Equal(t, 90, got.Period.Days)
}

// joinCounter cuenta las lecturas de productos con categoría embebida.
type joinCounter struct {
	repository.ProductRepository
	calls int
}

func (j *joinCounter) ListWithCategory(ctx context.Context, f repository.ProductFilter) ([]*entity.ProductWithCategory, error) {
	j.calls++
	return j.ProductRepository.ListWithCategory(ctx, f)
}

func TestReportesDeStock_CategoriaDesdeElJoin(t *testing.T) {
	store := seed(t)
	products := &joinCounter{ProductRepository: store.Products()}
	uc := analytics.NewReportUseCase(analytics.Sources{
		Products:   products,
		Categories: store.Categories(),
		Clients:    store.Clients(),
		Sales:      store.Sales(),
	}).WithClock(clock)
	ctx := context.Background()

	margins, err := uc.ProfitMargins(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	byID := map[string]string{}
	for _, r := range margins.Products {
		byID[r.ProductID] = r.CategoryName
	}
	assert.Equal(t, "Bebidas", byID["p1"])
	assert.Equal(t, "Sin categoría", byID["p3"])

	low, err := uc.LowStock(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, low.Products, 2)
	assert.Equal(t, "Sin categoría", low.Products[0].CategoryName)
	assert.Equal(t, "Bebidas", low.Products[1].CategoryName)

	dead, err := uc.DeadStock(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, dead.Products, 1)
	assert.Equal(t, "Bebidas", dead.Products[0].CategoryName)

	inv, err := uc.InventoryValue(ctx)
	require.NoError(t, err)
	require.Len(t, inv.Categories, 3)
	assert.Equal(t, 3, inv.Categories[0].Products)

	assert.Equal(t, 4, products.calls, "un join por reporte")
}

func TestProductRotation(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.ProductRotation(context.Background(), "p1", dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 32, got.UnitsSold)
	assert.Equal(t, "1.60", money(got.RotationRate))
	assert.Equal(t, dto.DaysOrNA{Days: 19, Valid: true}, got.DaysToSellOut)

	unsold, err := uc.ProductRotation(context.Background(), "p4", dto.ReportQuery{})
	require.NoError(t, err)
	assert.False(t, unsold.DaysToSellOut.Valid)

	_, err = uc.ProductRotation(context.Background(), "nope", dto.ReportQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestABCAnalysis(t *testing.T) {
	got, err := newReports(seed(t)).ABCAnalysis(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, got.Products, 4)
	assert.Equal(t, "p1", got.Products[0].ProductID)
	assert.Equal(t, "A", got.Products[0].Class)
	assert.Equal(t, "80.00", money(got.Products[0].CumulativePct))
	for _, p := range got.Products[1:] {
		assert.Equal(t, "C", p.Class, p.ProductID)
	}
	require.Len(t, got.Summary.Classes, 3)
	assert.Equal(t, 1, got.Summary.Classes[0].Products)
}

func TestDemandForecastYRestock(t *testing.T) {
	uc := newReports(seed(t))

	fc, err := uc.DemandForecast(context.Background(), "p2", dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 90, fc.Lookback.Days)
	assert.Equal(t, "8.00", money(fc.PredictedDemand))
	assert.Equal(t, 5, fc.RestockNeed)

	restock, err := uc.RestockSuggestions(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, restock.Products, 1, "solo productos con reposición > 0")
	assert.Equal(t, "p2", restock.Products[0].ProductID)
	assert.Equal(t, "10.00", money(restock.Summary.EstimatedCost))
}

func TestCategoryPerformance(t *testing.T) {
	got, err := newReports(seed(t)).CategoryPerformance(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, got.Categories, 2)
	assert.Equal(t, "Bebidas", got.Categories[0].CategoryName)
	assert.Equal(t, "600.00", money(got.Categories[0].Revenue))
	assert.Equal(t, "368.00", money(got.Categories[0].Cost))
	assert.Equal(t, "Panadería", got.Categories[1].CategoryName)
	assert.True(t, got.Categories[1].Revenue.IsZero())
}

func TestSimulatePrice(t *testing.T) {
	uc := newReports(seed(t))
	newPrice := decimal.NewFromInt(20)

	got, err := uc.SimulatePrice(context.Background(), "p1", dto.SimulatePriceRequest{NewPrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "10.00", money(got.Simulated.Profit))
	assert.Equal(t, "100.00", money(got.Simulated.MarginPct))
	assert.Equal(t, "100.00", money(got.Impact.PotentialProfitDelta))

	_, err = uc.SimulatePrice(context.Background(), "p1", dto.SimulatePriceRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingSimulationInput)

	_, err = uc.SimulatePrice(context.Background(), "nope", dto.SimulatePriceRequest{NewPrice: &newPrice})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func TestSalesAnalytics_PromedioYClientes(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.SalesAnalytics(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Summary.Sales)
	assert.Equal(t, "600.00", money(got.Summary.Revenue))
	assert.Equal(t, "200.00", money(got.Summary.AverageSale))
	assert.Equal(t, "100.00", money(got.Summary.MinSale))
	assert.Equal(t, "300.00", money(got.Summary.MaxSale))
	assert.Equal(t, 2, got.Summary.UniqueClients)
	assert.Equal(t, 30, got.Period.Days)

	again, err := uc.SalesAnalytics(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, got, again, "sin escrituras intermedias el reporte es idéntico")
}

func TestSalesAnalytics_FechasExplicitas(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.SalesAnalytics(context.Background(), dto.ReportQuery{StartDate: "2026-03-12", EndDate: "2026-03-12"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Summary.Sales, "endDate incluye el día completo")
	assert.Equal(t, 1, got.Period.Days)

	_, err = uc.SalesAnalytics(context.Background(), dto.ReportQuery{StartDate: "2026-13-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTopProducts(t *testing.T) {
	got, err := newReports(seed(t)).TopProducts(context.Background(), dto.ReportQuery{Limit: 1})
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, "p1", got.Products[0].ProductID)
	assert.Equal(t, "480.00", money(got.Products[0].Revenue))
	assert.Equal(t, "80.00", money(got.Products[0].RevenuePct))
}

func TestROI(t *testing.T) {
	got, err := newReports(seed(t)).ROI(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, "368.00", money(got.Summary.Cost))
	assert.Equal(t, "232.00", money(got.Summary.Profit))
	assert.Equal(t, "63.04", money(got.Summary.ROI))
	assert.Equal(t, "38.67", money(got.Summary.ProfitMargin), "profit_margin es sobre ingresos")
}

func TestDistribuciones_UniversoCompleto(t *testing.T) {
	uc := newReports(seed(t))
	ctx := context.Background()

	weekday, err := uc.ByWeekday(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, weekday.Buckets, 7)
	assert.Equal(t, "Domingo", weekday.Buckets[0].Label)
	tuesday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).Weekday()
	assert.Equal(t, 1, weekday.Buckets[tuesday].Sales)

	hour, err := uc.ByHour(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, hour.Buckets, 24)
	assert.Equal(t, "09:00", hour.Buckets[9].Label)
	assert.Equal(t, 2, hour.Buckets[9].Sales)
	assert.Equal(t, 1, hour.Buckets[18].Sales)
	assert.Equal(t, 0, hour.Buckets[0].Sales)

	monthly, err := uc.Monthly(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, monthly.Buckets, 12)
	assert.Equal(t, 2026, monthly.Year)
	assert.Equal(t, "Marzo", monthly.Buckets[2].Label)
	assert.Equal(t, "600.00", money(monthly.Buckets[2].Revenue))

	empty, err := uc.Monthly(ctx, dto.ReportQuery{Year: 2024})
	require.NoError(t, err)
	require.Len(t, empty.Buckets, 12)
	assert.Equal(t, 0, empty.Summary.Sales)
}

func TestSalesTrend_DiasSinVentasEnCero(t *testing.T) {
	got, err := newReports(seed(t)).SalesTrend(context.Background(), dto.ReportQuery{StartDate: "2026-03-09", EndDate: "2026-03-15"})
	require.NoError(t, err)

	require.Len(t, got.Buckets, 7)
	assert.Equal(t, "2026-03-09", got.Buckets[0].Key)
	assert.Equal(t, 0, got.Buckets[0].Sales)
	assert.Equal(t, "2026-03-10", got.Buckets[1].Key)
	assert.Equal(t, "100.00", money(got.Buckets[1].Revenue))
	assert.Equal(t, "2026-03-15", got.Buckets[6].Key)
}

func TestCrossSell(t *testing.T) {
	got, err := newReports(seed(t)).CrossSell(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Summary.Transactions, "solo ventas con 2+ productos")
	require.Len(t, got.Pairs, 1)
	pair := got.Pairs[0]
	assert.Equal(t, "p1", pair.ProductA.ProductID)
	assert.Equal(t, "p2", pair.ProductB.ProductID)
	assert.Equal(t, 2, pair.Count)
	assert.Equal(t, "100.00", money(pair.SupportPct))
	assert.Equal(t, "100.00", money(pair.ConfidenceAtoB))
}

func TestCrossSell_MinSupportCeroDevuelveTodo(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	// 100 tickets más de Café+Agua y uno solo de Pan+Té: 1/103 < 1 %
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		require.NoError(t, store.Sales().Create(ctx, &entity.Sale{
			ID: fmt.Sprintf("x%03d", i), ClientID: "cl3", Date: base.Add(time.Duration(i) * time.Minute),
			Items: []entity.SaleItem{item("p1", 1, 15), item("p2", 1, 5)}, Total: decimal.NewFromInt(20),
		}))
	}
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{
		ID: "y001", ClientID: "cl3", Date: base,
		Items: []entity.SaleItem{item("p3", 1, 4), item("p4", 1, 8)}, Total: decimal.NewFromInt(12),
	}))
	uc := newReports(store)

	def, err := uc.CrossSell(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 103, def.Summary.Transactions)
	assert.Equal(t, 1, def.Summary.Pairs, "el par raro queda bajo el soporte por defecto")

	zero := 0.0
	all, err := uc.CrossSell(ctx, dto.ReportQuery{MinSupport: &zero})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Summary.Pairs)
	assert.True(t, all.Summary.MinSupport.IsZero())
	require.Len(t, all.Pairs, 2)
	assert.Equal(t, "p3", all.Pairs[1].ProductA.ProductID)
}

func TestSimulateScenario(t *testing.T) {
	uc := newReports(seed(t))
	ten := decimal.NewFromInt(10)

	got, err := uc.SimulateScenario(context.Background(), dto.ScenarioRequest{PriceChangePct: &ten})
	require.NoError(t, err)
	assert.Equal(t, "600.00", money(got.Baseline.Revenue))
	assert.Equal(t, "660.00", money(got.Scenario.Revenue))
	assert.Equal(t, "368.00", money(got.Scenario.Cost))
	assert.Equal(t, "60.00", money(got.Impact.ProfitDelta))
	require.Len(t, got.Products, 2)

	_, err = uc.SimulateScenario(context.Background(), dto.ScenarioRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingSimulationInput)

	minus := decimal.NewFromInt(-150)
	_, err = uc.SimulateScenario(context.Background(), dto.ScenarioRequest{DemandChangePct: &minus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func TestClientValue(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.ClientValue(context.Background(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Purchases)
	assert.Equal(t, "400.00", money(got.LifetimeValue))
	assert.Equal(t, "200.00", money(got.AverageTicket))
	assert.Equal(t, 60, got.Loyalty.Score)
	assert.Equal(t, "Loyal", got.Loyalty.Segment)
	require.NotNil(t, got.DaysSinceLast)
	assert.Equal(t, 1, *got.DaysSinceLast)

	none, err := uc.ClientValue(context.Background(), "cl3")
	require.NoError(t, err)
	assert.Equal(t, "No purchases", none.Loyalty.Segment)
	assert.Nil(t, none.LastPurchase)

	_, err = uc.ClientValue(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPredictPurchase(t *testing.T) {
	uc := newReports(seed(t))

	got, err := uc.PredictPurchase(context.Background(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, analytics.PredictionPredicted, got.Status)
	require.NotNil(t, got.NextPurchase)
	assert.Equal(t, "2026-03-18", *got.NextPurchase)

	single, err := uc.PredictPurchase(context.Background(), "cl2")
	require.NoError(t, err)
	assert.Equal(t, analytics.PredictionInsufficientData, single.Status)
	assert.Nil(t, single.NextPurchase)
}

func TestSegmentation_SeisSegmentos(t *testing.T) {
	got, err := newReports(seed(t)).Segmentation(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Segments, 6)
	counts := map[string]int{}
	for _, s := range got.Segments {
		counts[s.Segment] = s.Clients
	}
	assert.Equal(t, 1, counts["Loyal"])
	assert.Equal(t, 1, counts["Regular"])
	assert.Equal(t, 1, counts["No purchases"])
	assert.Equal(t, 0, counts["VIP"])
	assert.Equal(t, 3, got.Summary.Clients)
}

func TestTopClients(t *testing.T) {
	got, err := newReports(seed(t)).TopClients(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Summary.Clients)
	require.Len(t, got.Clients, 2)
	assert.Equal(t, "cl1", got.Clients[0].ClientID)
	assert.Equal(t, "Ana", got.Clients[0].ClientName)
	assert.Equal(t, "400.00", money(got.Clients[0].TotalSpent))
}

func TestRetention_MesCeroEsCien(t *testing.T) {
	got, err := newReports(seed(t)).Retention(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 6, got.Months)
	require.Len(t, got.Cohorts, 1)
	c := got.Cohorts[0]
	assert.Equal(t, "2026-03", c.Month)
	assert.Equal(t, 2, c.Size)
	require.NotEmpty(t, c.Retention)
	assert.Equal(t, "100.00", money(c.Retention[0].RatePct))
}

func TestRetention_MesesIncluyeElActual(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	for _, c := range []*entity.Client{{ID: "cl4", Name: "Pedro"}, {ID: "cl5", Name: "Rosa"}} {
		require.NoError(t, store.Clients().Create(ctx, c))
	}
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{
		ID: "s-sep", ClientID: "cl4", Date: time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
		Items: []entity.SaleItem{item("p2", 1, 5)}, Total: decimal.NewFromInt(5),
	}))
	require.NoError(t, store.Sales().Create(ctx, &entity.Sale{
		ID: "s-oct", ClientID: "cl5", Date: time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC),
		Items: []entity.SaleItem{item("p2", 1, 5)}, Total: decimal.NewFromInt(5),
	}))

	got, err := newReports(store).Retention(ctx, dto.ReportQuery{Months: 6})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-01", got.Period.StartDate, "seis meses: octubre a marzo")
	require.Len(t, got.Cohorts, 2)
	assert.Equal(t, "2025-10", got.Cohorts[0].Month)
	assert.Len(t, got.Cohorts[0].Retention, 6)
	assert.Equal(t, "2026-03", got.Cohorts[1].Month)
}

// ── Idempotencia ──────────────────────────────────────────────────────────────

func TestReportes_MismaConsultaMismoResultado(t *testing.T) {
	ctx := context.Background()
	uc := newReports(seed(t))
	q := dto.ReportQuery{}
	zero := 0.0
	price := decimal.NewFromInt(18)
	pct := decimal.NewFromInt(10)

	reports := map[string]func() (any, error){
		"ProductProfit":       func() (any, error) { return uc.ProductProfit(ctx, "p1") },
		"InventoryValue":      func() (any, error) { return uc.InventoryValue(ctx) },
		"ProfitMargins":       func() (any, error) { return uc.ProfitMargins(ctx, q) },
		"PricingAnalysis":     func() (any, error) { return uc.PricingAnalysis(ctx) },
		"LowStock":            func() (any, error) { return uc.LowStock(ctx, q) },
		"DeadStock":           func() (any, error) { return uc.DeadStock(ctx, q) },
		"ProductRotation":     func() (any, error) { return uc.ProductRotation(ctx, "p1", q) },
		"Rotation":            func() (any, error) { return uc.Rotation(ctx, q) },
		"ABCAnalysis":         func() (any, error) { return uc.ABCAnalysis(ctx, q) },
		"DemandForecast":      func() (any, error) { return uc.DemandForecast(ctx, "p1", q) },
		"RestockSuggestions":  func() (any, error) { return uc.RestockSuggestions(ctx, q) },
		"CategoryPerformance": func() (any, error) { return uc.CategoryPerformance(ctx, q) },
		"SimulatePrice": func() (any, error) {
			return uc.SimulatePrice(ctx, "p1", dto.SimulatePriceRequest{NewPrice: &price})
		},
		"SalesAnalytics": func() (any, error) { return uc.SalesAnalytics(ctx, q) },
		"TopProducts":    func() (any, error) { return uc.TopProducts(ctx, q) },
		"SalesTrend":     func() (any, error) { return uc.SalesTrend(ctx, q) },
		"ByWeekday":      func() (any, error) { return uc.ByWeekday(ctx, q) },
		"ByHour":         func() (any, error) { return uc.ByHour(ctx, q) },
		"Monthly":        func() (any, error) { return uc.Monthly(ctx, q) },
		"ROI":            func() (any, error) { return uc.ROI(ctx, q) },
		"CrossSell":      func() (any, error) { return uc.CrossSell(ctx, dto.ReportQuery{MinSupport: &zero}) },
		"SimulateScenario": func() (any, error) {
			return uc.SimulateScenario(ctx, dto.ScenarioRequest{PriceChangePct: &pct})
		},
		"ClientValue":     func() (any, error) { return uc.ClientValue(ctx, "cl1") },
		"PredictPurchase": func() (any, error) { return uc.PredictPurchase(ctx, "cl1") },
		"Segmentation":    func() (any, error) { return uc.Segmentation(ctx) },
		"TopClients":      func() (any, error) { return uc.TopClients(ctx, q) },
		"Retention":       func() (any, error) { return uc.Retention(ctx, q) },
	}
	for name, run := range reports {
		t.Run(name, func(t *testing.T) {
			first, err := run()
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, err := run()
				require.NoError(t, err)
				assert.Equal(t, first, again, "la misma consulta sobre los mismos datos da el mismo resultado")
			}
		})
	}
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func TestDashboard_GetSummary(t *testing.T) {
	store := seed(t)
	uc := analytics.NewDashboardUseCase(store.Products(), store.Sales()).WithClock(clock)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, got.TodayOrders)
	assert.True(t, got.TodaySales.IsZero())
	assert.Equal(t, 3, got.MonthlyOrders)
	assert.Equal(t, "600.00", money(got.MonthlySales))
	assert.Equal(t, "232.00", money(got.MonthlyMargin))
	require.Len(t, got.TopProducts, 2)
	assert.Equal(t, "p1", got.TopProducts[0].ProductID)
	assert.Equal(t, "456.00", money(got.InventoryValue))
	assert.Equal(t, 2, got.LowStockProducts)
	assert.Equal(t, "Marzo 2026", got.DateLabel)
}
