package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Dimensiones de los reportes de distribución.
const (
	DimensionDay     = "day"
	DimensionWeekday = "weekday"
	DimensionHour    = "hour"
	DimensionMonth   = "month"
)

// ── Ventas por producto ───────────────────────────────────────────────────────

func (uc *ReportUseCase) productRanking(sales []*entity.Sale, byID map[string]*entity.Product) []dto.ProductSalesDTO {
	sold := aggregateByProduct(sales, byID)
	total := decimal.Zero
	for _, id := range sold.groups.Keys() {
		b, _ := sold.groups.Get(id)
		total = total.Add(b.Revenue)
	}
	keys := sold.ranked()
	out := make([]dto.ProductSalesDTO, 0, len(keys))
	for i, id := range keys {
		b, _ := sold.groups.Get(id)
		out = append(out, dto.ProductSalesDTO{
			Rank:        i + 1,
			ProductID:   id,
			ProductName: sold.names[id],
			UnitsSold:   b.Units,
			Revenue:     r2(b.Revenue),
			RevenuePct:  r2(metrics.Percent(b.Revenue, total)),
		})
	}
	return out
}

// SalesAnalytics totales de ventas de la ventana (30 días por defecto) y ventas por producto.
func (uc *ReportUseCase) SalesAnalytics(ctx context.Context, q dto.ReportQuery) (*dto.SalesAnalyticsDTO, error) {
	w, err := uc.window(q, salesDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	return &dto.SalesAnalyticsDTO{
		Period:   periodOf(w),
		Summary:  summarizeSales(snap.sales),
		Products: uc.productRanking(snap.sales, snap.byID),
	}, nil
}

// TopProducts los limit productos con más ingresos (10 por defecto).
func (uc *ReportUseCase) TopProducts(ctx context.Context, q dto.ReportQuery) (*dto.TopProductsDTO, error) {
	w, err := uc.window(q, salesDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	limit := limitOr(q.Limit, defaultTopLimit)
	ranking := uc.productRanking(snap.sales, snap.byID)
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return &dto.TopProductsDTO{
		Period:   periodOf(w),
		Limit:    limit,
		Summary:  summarizeSales(snap.sales),
		Products: ranking,
	}, nil
}

// ── Distribuciones ────────────────────────────────────────────────────────────

// distribution agrupa las ventas con keyOf sobre el universo completo de la dimensión.
func distribution(
	w metrics.Window,
	sales []*entity.Sale,
	dimension string,
	universe []string,
	labelOf func(key string) string,
	keyOf func(t time.Time) string,
) *dto.SalesDistributionDTO {
	groups := metrics.NewGroups(universe...)
	loc := w.From.Location()
	for _, s := range sales {
		groups.At(keyOf(s.Date.In(loc))).Observe(s.Units(), s.Total, decimal.Zero)
	}
	out := &dto.SalesDistributionDTO{
		Period:    periodOf(w),
		Dimension: dimension,
		Summary:   summarizeSales(sales),
		Buckets:   make([]dto.SalesBucketDTO, 0, groups.Len()),
	}
	for _, k := range groups.Keys() {
		b, _ := groups.Get(k)
		out.Buckets = append(out.Buckets, bucketDTO(k, labelOf(k), b))
	}
	return out
}

func numericKeys(from, to int) []string {
	keys := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		keys = append(keys, strconv.Itoa(i))
	}
	return keys
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// SalesTrend una fila por día calendario de la ventana, con ceros en los días sin ventas.
func (uc *ReportUseCase) SalesTrend(ctx context.Context, q dto.ReportQuery) (*dto.SalesDistributionDTO, error) {
	w, err := uc.window(q, salesDays)
	if err != nil {
		return nil, err
	}
	sales, err := uc.loadSales(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	return distribution(w, sales, DimensionDay, w.CalendarDays(),
		func(k string) string { return k },
		func(t time.Time) string { return t.Format(metrics.DateLayout) },
	), nil
}

// ByWeekday siete filas, de domingo (0) a sábado (6). Ventana de 90 días por defecto.
func (uc *ReportUseCase) ByWeekday(ctx context.Context, q dto.ReportQuery) (*dto.SalesDistributionDTO, error) {
	w, err := uc.window(q, weekdayDays)
	if err != nil {
		return nil, err
	}
	sales, err := uc.loadSales(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	return distribution(w, sales, DimensionWeekday, numericKeys(0, 6),
		func(k string) string { return metrics.WeekdayName(time.Weekday(atoi(k))) },
		func(t time.Time) string { return strconv.Itoa(int(t.Weekday())) },
	), nil
}

// ByHour veinticuatro filas, de 0 a 23.
func (uc *ReportUseCase) ByHour(ctx context.Context, q dto.ReportQuery) (*dto.SalesDistributionDTO, error) {
	w, err := uc.window(q, salesDays)
	if err != nil {
		return nil, err
	}
	sales, err := uc.loadSales(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	return distribution(w, sales, DimensionHour, numericKeys(0, 23),
		func(k string) string { return metrics.HourLabel(atoi(k)) },
		func(t time.Time) string { return strconv.Itoa(t.Hour()) },
	), nil
}

// Monthly doce filas del año pedido (año en curso por defecto).
func (uc *ReportUseCase) Monthly(ctx context.Context, q dto.ReportQuery) (*dto.SalesDistributionDTO, error) {
	now := uc.now()
	year := now.Year()
	if q.Year > 0 {
		year = q.Year
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	w := metrics.Window{From: from, To: from.AddDate(1, 0, 0)}

	sales, err := uc.loadSales(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	out := distribution(w, sales, DimensionMonth, numericKeys(1, 12),
		func(k string) string { return metrics.MonthName(time.Month(atoi(k))) },
		func(t time.Time) string { return strconv.Itoa(int(t.Month())) },
	)
	out.Year = year
	return out, nil
}

// ── ROI ───────────────────────────────────────────────────────────────────────

// ROI retorno de la ventana. El costo de cada ítem usa el precio de compra actual del producto.
func (uc *ReportUseCase) ROI(ctx context.Context, q dto.ReportQuery) (*dto.ROIReportDTO, error) {
	w, err := uc.window(q, salesDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(snap.sales, snap.byID)

	var revenue, cost decimal.Decimal
	for _, s := range snap.sales {
		revenue = revenue.Add(s.Total)
		cost = cost.Add(saleCost(s, snap.byID))
	}
	profit := revenue.Sub(cost)

	products := make([]dto.ProductROIDTO, 0, sold.groups.Len())
	for _, id := range sold.ranked() {
		b, _ := sold.groups.Get(id)
		products = append(products, dto.ProductROIDTO{
			ProductID:   id,
			ProductName: sold.names[id],
			UnitsSold:   b.Units,
			Revenue:     r2(b.Revenue),
			Cost:        r2(b.Cost),
			Profit:      r2(b.Profit()),
			ROI:         r2(metrics.ROI(b.Revenue, b.Cost)),
		})
	}
	if q.Limit > 0 && len(products) > q.Limit {
		products = products[:q.Limit]
	}
	return &dto.ROIReportDTO{
		Period: periodOf(w),
		Summary: dto.ROISummaryDTO{
			Sales:        len(snap.sales),
			Revenue:      r2(revenue),
			Cost:         r2(cost),
			Profit:       r2(profit),
			ROI:          r2(metrics.ROI(revenue, cost)),
			ProfitMargin: r2(metrics.Percent(profit, revenue)),
		},
		Products: products,
	}, nil
}

// ── Venta cruzada ─────────────────────────────────────────────────────────────

// CrossSell pares de productos comprados en la misma venta (90 días por defecto).
func (uc *ReportUseCase) CrossSell(ctx context.Context, q dto.ReportQuery) (*dto.CrossSellDTO, error) {
	w, err := uc.window(q, crossSellDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	minSupport := metrics.DefaultMinSupport
	if q.MinSupport != nil {
		minSupport = decimal.NewFromFloat(*q.MinSupport)
	}
	limit := limitOr(q.Limit, defaultCrossSellLimit)

	baskets := make([][]string, 0, len(snap.sales))
	for _, s := range snap.sales {
		ids := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			ids = append(ids, it.ProductID)
		}
		baskets = append(baskets, ids)
	}
	pairs, transactions := metrics.CrossSell(baskets, minSupport)
	found := len(pairs)
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}

	names := aggregateByProduct(snap.sales, snap.byID).names
	ref := func(id string) dto.ProductRefDTO { return dto.ProductRefDTO{ProductID: id, ProductName: names[id]} }
	hundred := decimal.NewFromInt(100)

	out := &dto.CrossSellDTO{
		Period: periodOf(w),
		Limit:  limit,
		Summary: dto.CrossSellSummaryDTO{
			Transactions: transactions,
			Pairs:        found,
			MinSupport:   minSupport,
		},
		Pairs: make([]dto.CrossSellPairDTO, 0, len(pairs)),
	}
	for _, p := range pairs {
		out.Pairs = append(out.Pairs, dto.CrossSellPairDTO{
			ProductA:       ref(p.A),
			ProductB:       ref(p.B),
			Count:          p.Count,
			SupportPct:     r2(p.Support.Mul(hundred)),
			ConfidenceAtoB: r2(p.ConfidenceAB.Mul(hundred)),
			ConfidenceBtoA: r2(p.ConfidenceBA.Mul(hundred)),
		})
	}
	return out, nil
}

// ── Escenarios ────────────────────────────────────────────────────────────────

// SimulateScenario proyecta las ventas de la ventana (30 días por defecto) con variaciones
// de precio, costo y demanda. No persiste nada.
func (uc *ReportUseCase) SimulateScenario(ctx context.Context, in dto.ScenarioRequest) (*dto.ScenarioDTO, error) {
	change := metrics.ScenarioChange{PricePct: in.PriceChangePct, CostPct: in.CostChangePct, DemandPct: in.DemandChangePct}
	if change.Empty() {
		return nil, fmt.Errorf("%w: se requiere price_change_pct, cost_change_pct o demand_change_pct", domain.ErrMissingSimulationInput)
	}
	w, err := uc.window(dto.ReportQuery{Days: in.Days, StartDate: in.StartDate, EndDate: in.EndDate}, scenarioDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(snap.sales, snap.byID)

	var base, projected metrics.Totals
	products := make([]dto.ScenarioProductDTO, 0, sold.groups.Len())
	for _, id := range sold.ranked() {
		b, _ := sold.groups.Get(id)
		pb := metrics.Totals{Units: decimal.NewFromInt(int64(b.Units)), Revenue: b.Revenue, Cost: b.Cost}
		ps, err := metrics.ApplyScenario(pb, change)
		if err != nil {
			return nil, err
		}
		base = base.Add(pb)
		projected = projected.Add(ps)
		products = append(products, dto.ScenarioProductDTO{
			ProductID:   id,
			ProductName: sold.names[id],
			Baseline:    totalsDTO(pb),
			Scenario:    totalsDTO(ps),
		})
	}
	if len(products) == 0 {
		// sin ventas igual se validan las variaciones
		if _, err := metrics.ApplyScenario(base, change); err != nil {
			return nil, err
		}
	}

	return &dto.ScenarioDTO{
		Period: periodOf(w),
		Changes: dto.ScenarioChangesDTO{
			PriceChangePct:  in.PriceChangePct,
			CostChangePct:   in.CostChangePct,
			DemandChangePct: in.DemandChangePct,
		},
		Baseline: totalsDTO(base),
		Scenario: totalsDTO(projected),
		Impact: dto.ScenarioImpactDTO{
			RevenueDelta:   r2(projected.Revenue.Sub(base.Revenue)),
			CostDelta:      r2(projected.Cost.Sub(base.Cost)),
			ProfitDelta:    r2(projected.Profit().Sub(base.Profit())),
			ProfitDeltaPct: r2(metrics.Percent(projected.Profit().Sub(base.Profit()), base.Profit().Abs())),
		},
		Products: products,
	}, nil
}

func totalsDTO(t metrics.Totals) dto.ScenarioTotalsDTO {
	return dto.ScenarioTotalsDTO{
		UnitsSold: r2(t.Units),
		Revenue:   r2(t.Revenue),
		Cost:      r2(t.Cost),
		Profit:    r2(t.Profit()),
		MarginPct: r2(t.MarginPct()),
	}
}
