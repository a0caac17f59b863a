package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ProductProfit utilidad y margen (sobre costo) de un producto.
func (uc *ReportUseCase) ProductProfit(ctx context.Context, productID string) (*dto.ProductProfitDTO, error) {
	p, err := uc.product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	margin := metrics.MarginPct(p.SalePrice, p.PurchasePrice)
	return &dto.ProductProfitDTO{
		ProductID:     p.ID,
		ProductName:   p.Name,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Profit:        r2(metrics.Profit(p.SalePrice, p.PurchasePrice)),
		MarginPct:     r2(margin),
		ProfitMargin:  metrics.FormatPct(margin),
	}, nil
}

// InventoryValue valor del inventario a costo y a precio de venta, total y por categoría.
// Todas las categorías aparecen, aunque no tengan productos.
func (uc *ReportUseCase) InventoryValue(ctx context.Context) (*dto.InventoryValueDTO, error) {
	names, categories, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productsWithCategory(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	universe := make([]string, 0, len(categories))
	for _, c := range categories {
		universe = append(universe, c.ID)
	}
	groups := metrics.NewGroups(universe...)
	var total metrics.Bucket
	for _, p := range products {
		key, _ := categoryOf(p)
		qty := decimal.NewFromInt(int64(p.Stock))
		saleValue, costValue := p.SalePrice.Mul(qty), p.PurchasePrice.Mul(qty)
		groups.At(key).Observe(p.Stock, saleValue, costValue)
		total.Observe(p.Stock, saleValue, costValue)
	}

	out := &dto.InventoryValueDTO{
		Summary: dto.InventoryValueSummaryDTO{
			Products:        total.Count,
			Units:           total.Units,
			CostValue:       r2(total.Cost),
			SaleValue:       r2(total.Revenue),
			PotentialProfit: r2(total.Profit()),
		},
		Categories: make([]dto.CategoryInventoryDTO, 0, groups.Len()),
	}
	for _, id := range groups.Keys() {
		b, _ := groups.Get(id)
		out.Categories = append(out.Categories, dto.CategoryInventoryDTO{
			CategoryID:      id,
			CategoryName:    categoryLabel(names, id),
			Products:        b.Count,
			Units:           b.Units,
			CostValue:       r2(b.Cost),
			SaleValue:       r2(b.Revenue),
			PotentialProfit: r2(b.Profit()),
		})
	}
	return out, nil
}

// marginRows productos con su margen, ordenados por margen descendente.
func (uc *ReportUseCase) marginRows(ctx context.Context) ([]dto.ProductMarginDTO, error) {
	products, err := uc.productsWithCategory(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	type row struct {
		dto    dto.ProductMarginDTO
		margin decimal.Decimal
	}
	rows := make([]row, 0, len(products))
	for _, p := range products {
		m := metrics.MarginPct(p.SalePrice, p.PurchasePrice)
		_, category := categoryOf(p)
		rows = append(rows, row{margin: m, dto: dto.ProductMarginDTO{
			ProductID:     p.ID,
			ProductName:   p.Name,
			CategoryName:  category,
			SalePrice:     p.SalePrice,
			PurchasePrice: p.PurchasePrice,
			Profit:        r2(metrics.Profit(p.SalePrice, p.PurchasePrice)),
			MarginPct:     r2(m),
			Band:          metrics.MarginBand(m),
		}})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].margin.Cmp(rows[j].margin); c != 0 {
			return c > 0
		}
		return rows[i].dto.ProductID < rows[j].dto.ProductID
	})
	out := make([]dto.ProductMarginDTO, len(rows))
	for i, r := range rows {
		out[i] = r.dto
	}
	return out, nil
}

// ProfitMargins ranking de productos por margen descendente.
func (uc *ReportUseCase) ProfitMargins(ctx context.Context, q dto.ReportQuery) (*dto.ProfitMarginReportDTO, error) {
	rows, err := uc.marginRows(ctx)
	if err != nil {
		return nil, err
	}
	limit := limitOr(q.Limit, defaultMarginLimit)

	count := len(rows)
	sum := decimal.Zero
	negative := 0
	for _, r := range rows {
		sum = sum.Add(r.MarginPct)
		if r.MarginPct.IsNegative() {
			negative++
		}
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return &dto.ProfitMarginReportDTO{
		Limit: limit,
		Summary: dto.MarginSummaryDTO{
			Products:      count,
			AvgMarginPct:  r2(metrics.SafeDiv(sum, decimal.NewFromInt(int64(count)), decimal.Zero)),
			NegativeCount: negative,
		},
		Products: rows,
	}, nil
}

// PricingAnalysis promedios de precio y margen y distribución por banda de margen.
func (uc *ReportUseCase) PricingAnalysis(ctx context.Context) (*dto.PricingAnalysisDTO, error) {
	rows, err := uc.marginRows(ctx)
	if err != nil {
		return nil, err
	}
	bands := metrics.NewGroups(metrics.BandNegative, metrics.BandLow, metrics.BandMedium, metrics.BandHigh)
	var all metrics.Bucket
	var sale, purchase decimal.Decimal
	for _, r := range rows {
		bands.At(r.Band).Observe(1, r.MarginPct, decimal.Zero)
		all.Observe(1, r.MarginPct, decimal.Zero)
		sale = sale.Add(r.SalePrice)
		purchase = purchase.Add(r.PurchasePrice)
	}
	n := decimal.NewFromInt(int64(all.Count))

	out := &dto.PricingAnalysisDTO{
		Summary: dto.PricingSummaryDTO{
			Products:         all.Count,
			AvgSalePrice:     r2(metrics.SafeDiv(sale, n, decimal.Zero)),
			AvgPurchasePrice: r2(metrics.SafeDiv(purchase, n, decimal.Zero)),
			AvgMarginPct:     r2(all.Average()),
			MinMarginPct:     r2(all.Min),
			MaxMarginPct:     r2(all.Max),
		},
		Products: rows,
	}
	for _, band := range bands.Keys() {
		b, _ := bands.Get(band)
		out.Bands = append(out.Bands, dto.PricingBandDTO{Band: band, Products: b.Count, AvgMarginPct: r2(b.Average())})
	}
	return out, nil
}

// LowStock productos con stock <= threshold (10 por defecto), de menor a mayor stock.
func (uc *ReportUseCase) LowStock(ctx context.Context, q dto.ReportQuery) (*dto.LowStockReportDTO, error) {
	threshold := defaultLowStockThreshold
	if q.Threshold != nil {
		threshold = *q.Threshold
	}
	products, err := uc.productsWithCategory(ctx, repository.ProductFilter{MaxStock: &threshold})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Stock != products[j].Stock {
			return products[i].Stock < products[j].Stock
		}
		return products[i].ID < products[j].ID
	})
	items, summary := stockItems(products)
	return &dto.LowStockReportDTO{Threshold: threshold, Summary: summary, Products: items}, nil
}

// DeadStock productos con stock > 0 y sin ventas en la ventana (90 días por defecto).
func (uc *ReportUseCase) DeadStock(ctx context.Context, q dto.ReportQuery) (*dto.DeadStockReportDTO, error) {
	w, err := uc.window(q, deadStockDays)
	if err != nil {
		return nil, err
	}
	products, err := uc.productsWithCategory(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	sales, err := uc.loadSales(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = &p.Product
	}
	sold := aggregateByProduct(sales, byID)

	dead := make([]*entity.ProductWithCategory, 0)
	for _, p := range products {
		if p.Stock > 0 && sold.units(p.ID) == 0 {
			dead = append(dead, p)
		}
	}
	sort.SliceStable(dead, func(i, j int) bool {
		vi := dead[i].PurchasePrice.Mul(decimal.NewFromInt(int64(dead[i].Stock)))
		vj := dead[j].PurchasePrice.Mul(decimal.NewFromInt(int64(dead[j].Stock)))
		if c := vi.Cmp(vj); c != 0 {
			return c > 0
		}
		return dead[i].ID < dead[j].ID
	})
	items, summary := stockItems(dead)
	return &dto.DeadStockReportDTO{Period: periodOf(w), Summary: summary, Products: items}, nil
}

func stockItems(products []*entity.ProductWithCategory) ([]dto.StockItemDTO, dto.StockSummaryDTO) {
	items := make([]dto.StockItemDTO, 0, len(products))
	var sum dto.StockSummaryDTO
	for _, p := range products {
		value := p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Stock)))
		_, category := categoryOf(p)
		items = append(items, dto.StockItemDTO{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CategoryName: category,
			Stock:        p.Stock,
			CostValue:    r2(value),
		})
		sum.Products++
		sum.Units += p.Stock
		sum.CostValue = sum.CostValue.Add(value)
	}
	sum.CostValue = r2(sum.CostValue)
	return items, sum
}

// ── Rotación ──────────────────────────────────────────────────────────────────

func rotationOf(p *entity.Product, unitsSold, windowDays int) dto.ProductRotationDTO {
	days, ok := metrics.DaysToSellOut(p.Stock, unitsSold, windowDays)
	return dto.ProductRotationDTO{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Stock:         p.Stock,
		UnitsSold:     unitsSold,
		RotationRate:  r2(metrics.RotationRate(unitsSold, p.Stock)),
		DaysToSellOut: dto.DaysOrNA{Days: days, Valid: ok},
	}
}

// ProductRotation rotación de un producto en la ventana (30 días por defecto).
func (uc *ReportUseCase) ProductRotation(ctx context.Context, productID string, q dto.ReportQuery) (*dto.ProductRotationReportDTO, error) {
	w, err := uc.window(q, rotationDays)
	if err != nil {
		return nil, err
	}
	p, err := uc.product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	f := salesIn(w)
	f.ProductID = productID
	sales, err := uc.loadSales(ctx, f)
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(sales, map[string]*entity.Product{p.ID: p})
	return &dto.ProductRotationReportDTO{
		Period:             periodOf(w),
		ProductRotationDTO: rotationOf(p, sold.units(p.ID), w.Days()),
	}, nil
}

// Rotation rotación de todos los productos, de mayor a menor.
func (uc *ReportUseCase) Rotation(ctx context.Context, q dto.ReportQuery) (*dto.RotationReportDTO, error) {
	w, err := uc.window(q, rotationDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(snap.sales, snap.byID)

	rows := make([]dto.ProductRotationDTO, 0, len(snap.products))
	rates := make(map[string]decimal.Decimal, len(snap.products))
	totalUnits := 0
	sumRate := decimal.Zero
	for _, p := range snap.products {
		units := sold.units(p.ID)
		rate := metrics.RotationRate(units, p.Stock)
		rates[p.ID] = rate
		sumRate = sumRate.Add(rate)
		totalUnits += units
		rows = append(rows, rotationOf(p, units, w.Days()))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rates[rows[i].ProductID].Cmp(rates[rows[j].ProductID]); c != 0 {
			return c > 0
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return &dto.RotationReportDTO{
		Period: periodOf(w),
		Summary: dto.RotationSummaryDTO{
			Products:        len(snap.products),
			UnitsSold:       totalUnits,
			AvgRotationRate: r2(metrics.SafeDiv(sumRate, decimal.NewFromInt(int64(len(snap.products))), decimal.Zero)),
		},
		Products: rows,
	}, nil
}

// ── ABC ───────────────────────────────────────────────────────────────────────

// ABCAnalysis clasificación ABC por ingreso en la ventana (365 días por defecto).
// Los productos sin ventas quedan en C.
func (uc *ReportUseCase) ABCAnalysis(ctx context.Context, q dto.ReportQuery) (*dto.ABCReportDTO, error) {
	w, err := uc.window(q, abcDays)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(snap.sales, snap.byID)
	for _, p := range snap.products {
		sold.groups.At(p.ID)
	}

	inputs := make([]metrics.ABCInput, 0, sold.groups.Len())
	for _, id := range sold.groups.Keys() {
		b, _ := sold.groups.Get(id)
		inputs = append(inputs, metrics.ABCInput{Key: id, Revenue: b.Revenue})
	}
	entries := metrics.ClassifyABC(inputs)

	classes := metrics.NewGroups(metrics.ClassA, metrics.ClassB, metrics.ClassC)
	total := decimal.Zero
	items := make([]dto.ABCItemDTO, 0, len(entries))
	for i, e := range entries {
		b, _ := sold.groups.Get(e.Key)
		classes.At(e.Class).Observe(b.Units, e.Revenue, decimal.Zero)
		total = total.Add(e.Revenue)
		items = append(items, dto.ABCItemDTO{
			Rank:          i + 1,
			ProductID:     e.Key,
			ProductName:   sold.names[e.Key],
			UnitsSold:     b.Units,
			Revenue:       r2(e.Revenue),
			RevenuePct:    r2(e.SharePct),
			CumulativePct: r2(e.CumulativePct),
			Class:         e.Class,
		})
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}

	summary := dto.ABCSummaryDTO{Products: len(entries), TotalRevenue: r2(total)}
	for _, c := range classes.Keys() {
		b, _ := classes.Get(c)
		summary.Classes = append(summary.Classes, dto.ABCClassDTO{
			Class:      c,
			Products:   b.Count,
			Revenue:    r2(b.Revenue),
			RevenuePct: r2(metrics.Percent(b.Revenue, total)),
		})
	}
	return &dto.ABCReportDTO{Period: periodOf(w), Summary: summary, Products: items}, nil
}

// ── Demanda ───────────────────────────────────────────────────────────────────

// forecastWindow histórico de 3 × el horizonte hasta now (o hasta endDate).
func (uc *ReportUseCase) forecastWindow(q dto.ReportQuery) (metrics.Window, int, error) {
	horizon := limitOr(q.Days, forecastHorizon)
	w, err := metrics.ResolveWindow(uc.now(), "", q.EndDate, horizon*metrics.LookbackFactor)
	return w, horizon, err
}

// DemandForecast demanda esperada de un producto en el horizonte (30 días por defecto).
func (uc *ReportUseCase) DemandForecast(ctx context.Context, productID string, q dto.ReportQuery) (*dto.DemandForecastDTO, error) {
	w, horizon, err := uc.forecastWindow(q)
	if err != nil {
		return nil, err
	}
	p, err := uc.product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	f := salesIn(w)
	f.ProductID = productID
	sales, err := uc.loadSales(ctx, f)
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(sales, map[string]*entity.Product{p.ID: p})
	fc := metrics.ForecastDemand(sold.units(p.ID), w.Days(), horizon, p.Stock)
	return &dto.DemandForecastDTO{
		Lookback:        periodOf(w),
		ProductID:       p.ID,
		ProductName:     p.Name,
		HorizonDays:     horizon,
		UnitsSold:       fc.UnitsSold,
		AvgDailySales:   r2(fc.AvgDaily),
		PredictedDemand: r2(fc.Predicted),
		Stock:           p.Stock,
		RestockNeed:     fc.RestockNeed,
	}, nil
}

// RestockSuggestions productos cuya demanda esperada supera el stock, ordenados por cantidad a reponer.
func (uc *ReportUseCase) RestockSuggestions(ctx context.Context, q dto.ReportQuery) (*dto.RestockReportDTO, error) {
	w, horizon, err := uc.forecastWindow(q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}
	sold := aggregateByProduct(snap.sales, snap.byID)

	items := make([]dto.RestockItemDTO, 0)
	var sum dto.RestockSummaryDTO
	for _, p := range snap.products {
		fc := metrics.ForecastDemand(sold.units(p.ID), w.Days(), horizon, p.Stock)
		if fc.RestockNeed <= 0 {
			continue
		}
		cost := p.PurchasePrice.Mul(decimal.NewFromInt(int64(fc.RestockNeed)))
		items = append(items, dto.RestockItemDTO{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Stock:           p.Stock,
			PredictedDemand: r2(fc.Predicted),
			RestockQty:      fc.RestockNeed,
			EstimatedCost:   r2(cost),
		})
		sum.Products++
		sum.Units += fc.RestockNeed
		sum.EstimatedCost = sum.EstimatedCost.Add(cost)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RestockQty != items[j].RestockQty {
			return items[i].RestockQty > items[j].RestockQty
		}
		return items[i].ProductID < items[j].ProductID
	})
	sum.EstimatedCost = r2(sum.EstimatedCost)
	return &dto.RestockReportDTO{Lookback: periodOf(w), HorizonDays: horizon, Summary: sum, Products: items}, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryPerformance ventas por categoría en la ventana (30 días por defecto),
// incluyendo categorías sin ventas.
func (uc *ReportUseCase) CategoryPerformance(ctx context.Context, q dto.ReportQuery) (*dto.CategoryPerformanceDTO, error) {
	w, err := uc.window(q, categoryPerfDays)
	if err != nil {
		return nil, err
	}
	names, categories, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := uc.load(ctx, repository.ProductFilter{}, salesIn(w))
	if err != nil {
		return nil, err
	}

	universe := make([]string, 0, len(categories))
	for _, c := range categories {
		universe = append(universe, c.ID)
	}
	groups := metrics.NewGroups(universe...)
	productCount := map[string]int{}
	for _, p := range snap.products {
		productCount[categoryKey(names, p.CategoryID)]++
	}
	for _, s := range snap.sales {
		for _, it := range s.Items {
			key := ""
			if p, ok := snap.byID[it.ProductID]; ok {
				key = categoryKey(names, p.CategoryID)
			}
			groups.At(key).Observe(it.Quantity, it.Total, itemCost(it, snap.byID))
		}
	}

	var total metrics.Bucket
	for _, id := range groups.Keys() {
		b, _ := groups.Get(id)
		total.Units += b.Units
		total.Revenue = total.Revenue.Add(b.Revenue)
		total.Cost = total.Cost.Add(b.Cost)
	}

	items := make([]dto.CategoryPerformanceItemDTO, 0, groups.Len())
	for _, id := range groups.Keys() {
		b, _ := groups.Get(id)
		items = append(items, dto.CategoryPerformanceItemDTO{
			CategoryID:   id,
			CategoryName: categoryLabel(names, id),
			Products:     productCount[id],
			UnitsSold:    b.Units,
			Revenue:      r2(b.Revenue),
			Cost:         r2(b.Cost),
			Profit:       r2(b.Profit()),
			MarginPct:    r2(metrics.Percent(b.Profit(), b.Cost)),
			RevenuePct:   r2(metrics.Percent(b.Revenue, total.Revenue)),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Revenue.Cmp(items[j].Revenue); c != 0 {
			return c > 0
		}
		return items[i].CategoryName < items[j].CategoryName
	})
	return &dto.CategoryPerformanceDTO{
		Period: periodOf(w),
		Summary: dto.CategoryPerformanceSummaryDTO{
			Categories: len(categories),
			UnitsSold:  total.Units,
			Revenue:    r2(total.Revenue),
			Profit:     r2(total.Profit()),
		},
		Categories: items,
	}, nil
}

func categoryKey(names map[string]string, id string) string {
	if _, ok := names[id]; ok {
		return id
	}
	return ""
}

// ── Simulación de precio ──────────────────────────────────────────────────────

// SimulatePrice simula un nuevo precio de venta sin persistir nada.
func (uc *ReportUseCase) SimulatePrice(ctx context.Context, productID string, in dto.SimulatePriceRequest) (*dto.PriceSimulationDTO, error) {
	if in.NewPrice == nil && in.Percentage == nil {
		return nil, domain.ErrMissingSimulationInput
	}
	p, err := uc.product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	sim, err := metrics.SimulatePrice(p.SalePrice, p.PurchasePrice, p.Stock, metrics.PriceChange{
		NewPrice:   in.NewPrice,
		Percentage: in.Percentage,
	})
	if err != nil {
		return nil, err
	}
	return &dto.PriceSimulationDTO{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Stock:         sim.Stock,
		PurchasePrice: sim.Cost,
		Current: dto.PricePointDTO{
			Price:           r2(sim.CurrentPrice),
			Profit:          r2(sim.CurrentProfit),
			MarginPct:       r2(sim.CurrentMarginPct),
			StockValue:      r2(sim.CurrentStockValue),
			PotentialProfit: r2(sim.CurrentPotentialProfit),
		},
		Simulated: dto.PricePointDTO{
			Price:           r2(sim.NewPrice),
			Profit:          r2(sim.NewProfit),
			MarginPct:       r2(sim.NewMarginPct),
			StockValue:      r2(sim.NewStockValue),
			PotentialProfit: r2(sim.NewPotentialProfit),
		},
		Impact: dto.PriceImpactDTO{
			PriceChangePct:       r2(sim.PriceChangePct),
			ProfitDelta:          r2(sim.ProfitDelta),
			StockValueDelta:      r2(sim.NewStockValue.Sub(sim.CurrentStockValue)),
			PotentialProfitDelta: r2(sim.NewPotentialProfit.Sub(sim.CurrentPotentialProfit)),
		},
	}, nil
}
