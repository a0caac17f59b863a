package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Estados de la predicción de compra.
const (
	PredictionPredicted        = "predicted"
	PredictionInsufficientData = "insufficient_data"
)

// clientHistory compras acumuladas de un cliente.
type clientHistory struct {
	purchases int
	spent     decimal.Decimal
	first     time.Time
	last      time.Time
	dates     []time.Time
}

func (h *clientHistory) observe(s *entity.Sale) {
	if h.purchases == 0 || s.Date.Before(h.first) {
		h.first = s.Date
	}
	if h.purchases == 0 || s.Date.After(h.last) {
		h.last = s.Date
	}
	h.purchases++
	h.spent = h.spent.Add(s.Total)
	h.dates = append(h.dates, s.Date)
}

func (h *clientHistory) average() decimal.Decimal {
	return metrics.SafeDiv(h.spent, decimal.NewFromInt(int64(h.purchases)), decimal.Zero)
}

func histories(sales []*entity.Sale) map[string]*clientHistory {
	out := map[string]*clientHistory{}
	for _, s := range sales {
		if s.ClientID == "" {
			continue
		}
		h, ok := out[s.ClientID]
		if !ok {
			h = &clientHistory{}
			out[s.ClientID] = h
		}
		h.observe(s)
	}
	return out
}

func (uc *ReportUseCase) client(ctx context.Context, id string) (*entity.Client, *clientHistory, error) {
	c, err := uc.src.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	sales, err := uc.loadSales(ctx, repository.SaleFilter{ClientID: id})
	if err != nil {
		return nil, nil, err
	}
	h := &clientHistory{}
	for _, s := range sales {
		h.observe(s)
	}
	return c, h, nil
}

// ClientValue valor de vida, ticket medio y fidelidad de un cliente sobre todo su historial.
func (uc *ReportUseCase) ClientValue(ctx context.Context, clientID string) (*dto.ClientValueDTO, error) {
	c, h, err := uc.client(ctx, clientID)
	if err != nil {
		return nil, err
	}
	l := metrics.ScoreLoyalty(uc.now(), h.purchases, h.spent, h.last)
	out := &dto.ClientValueDTO{
		ClientID:      c.ID,
		ClientName:    c.Name,
		Email:         c.Email,
		Purchases:     h.purchases,
		LifetimeValue: r2(h.spent),
		AverageTicket: r2(h.average()),
		Loyalty: dto.LoyaltyDTO{
			Score:     l.Score,
			Recency:   l.Recency,
			Frequency: l.Frequency,
			Monetary:  l.Monetary,
			Segment:   l.Segment,
		},
	}
	if h.purchases > 0 {
		first, last, days := h.first, h.last, l.DaysSinceLast
		out.FirstPurchase, out.LastPurchase, out.DaysSinceLast = &first, &last, &days
	}
	return out, nil
}

// PredictPurchase fecha estimada de la próxima compra según el intervalo medio entre compras.
func (uc *ReportUseCase) PredictPurchase(ctx context.Context, clientID string) (*dto.PurchasePredictionDTO, error) {
	c, h, err := uc.client(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchasePredictionDTO{
		ClientID:   c.ID,
		ClientName: c.Name,
		Purchases:  h.purchases,
		Status:     PredictionInsufficientData,
	}
	if h.purchases > 0 {
		last := h.last
		out.LastPurchase = &last
	}
	p, ok := metrics.PredictNextPurchase(h.dates)
	if !ok {
		return out, nil
	}
	avg := r2(p.AvgIntervalDays)
	next := p.NextPurchase.Format(metrics.DateLayout)
	until := int(math.Ceil(p.NextPurchase.Sub(uc.now()).Hours() / 24))
	out.Status = PredictionPredicted
	out.AvgIntervalDays, out.NextPurchase, out.DaysUntilNext = &avg, &next, &until
	return out, nil
}

// Segmentation clasifica a todos los clientes según su puntaje de fidelidad.
// Los seis segmentos siempre aparecen.
func (uc *ReportUseCase) Segmentation(ctx context.Context) (*dto.SegmentationDTO, error) {
	clients, err := uc.src.Clients.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.loadSales(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}
	hist := histories(sales)
	now := uc.now()

	segments := metrics.NewGroups(metrics.Segments...)
	var total metrics.Bucket
	rows := make([]dto.ClientSegmentDTO, 0, len(clients))
	for _, c := range clients {
		h, ok := hist[c.ID]
		if !ok {
			h = &clientHistory{}
		}
		l := metrics.ScoreLoyalty(now, h.purchases, h.spent, h.last)
		segments.At(l.Segment).Observe(h.purchases, h.spent, decimal.Zero)
		total.Observe(h.purchases, h.spent, decimal.Zero)
		rows = append(rows, dto.ClientSegmentDTO{
			ClientID:   c.ID,
			ClientName: c.Name,
			Purchases:  h.purchases,
			TotalSpent: r2(h.spent),
			Score:      l.Score,
			Segment:    l.Segment,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].ClientID < rows[j].ClientID
	})

	out := &dto.SegmentationDTO{
		Summary:  dto.SegmentationSummaryDTO{Clients: total.Count, Revenue: r2(total.Revenue)},
		Segments: make([]dto.SegmentBucketDTO, 0, segments.Len()),
		Clients:  rows,
	}
	count := decimal.NewFromInt(int64(total.Count))
	for _, seg := range segments.Keys() {
		b, _ := segments.Get(seg)
		out.Segments = append(out.Segments, dto.SegmentBucketDTO{
			Segment:    seg,
			Clients:    b.Count,
			Revenue:    r2(b.Revenue),
			ClientsPct: r2(metrics.Percent(decimal.NewFromInt(int64(b.Count)), count)),
		})
	}
	return out, nil
}

// TopClients los limit clientes con mayor monto comprado en la ventana (365 días por defecto).
func (uc *ReportUseCase) TopClients(ctx context.Context, q dto.ReportQuery) (*dto.TopClientsDTO, error) {
	w, err := uc.window(q, topClientsDays)
	if err != nil {
		return nil, err
	}
	sales, err := uc.src.Sales.FindWithClient(ctx, salesIn(w))
	if err != nil {
		return nil, err
	}
	hist := map[string]*clientHistory{}
	info := map[string]*entity.Client{}
	var order []string
	revenue := decimal.Zero
	for _, s := range sales {
		if s.ClientID == "" {
			continue
		}
		h, ok := hist[s.ClientID]
		if !ok {
			h = &clientHistory{}
			hist[s.ClientID] = h
			order = append(order, s.ClientID)
		}
		h.observe(&s.Sale)
		if s.Client != nil {
			info[s.ClientID] = s.Client
		}
		revenue = revenue.Add(s.Total)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if c := hist[order[i]].spent.Cmp(hist[order[j]].spent); c != 0 {
			return c > 0
		}
		return order[i] < order[j]
	})

	limit := limitOr(q.Limit, defaultTopLimit)
	out := &dto.TopClientsDTO{
		Period:  periodOf(w),
		Limit:   limit,
		Summary: dto.TopClientsSummaryDTO{Clients: len(order), Revenue: r2(revenue)},
		Clients: make([]dto.ClientRankDTO, 0, limit),
	}
	for i, id := range order {
		if i == limit {
			break
		}
		h := hist[id]
		row := dto.ClientRankDTO{
			Rank:          i + 1,
			ClientID:      id,
			Purchases:     h.purchases,
			TotalSpent:    r2(h.spent),
			AverageTicket: r2(h.average()),
			LastPurchase:  h.last,
		}
		if c, ok := info[id]; ok {
			row.ClientName, row.Email = c.Name, c.Email
		}
		out.Clients = append(out.Clients, row)
	}
	return out, nil
}

// Retention cohortes por mes de primera compra de los últimos months meses (6 por defecto).
// La primera compra se busca en todo el historial, no solo en la ventana.
func (uc *ReportUseCase) Retention(ctx context.Context, q dto.ReportQuery) (*dto.RetentionDTO, error) {
	months := limitOr(q.Months, retentionMonths)
	// months cohortes: el mes en curso y los months-1 anteriores
	w := metrics.TrailingMonths(uc.now(), months-1)
	w.From = metrics.StartOfMonth(w.From)

	sales, err := uc.loadSales(ctx, repository.SaleFilter{To: w.To})
	if err != nil {
		return nil, err
	}
	acts := make([]metrics.Activity, 0, len(sales))
	for _, s := range sales {
		acts = append(acts, metrics.Activity{ClientID: s.ClientID, Date: s.Date.In(w.From.Location())})
	}
	cohorts := metrics.BuildCohorts(acts, w.From, w.To)

	out := &dto.RetentionDTO{
		Period:  periodOf(w),
		Months:  months,
		Cohorts: make([]dto.CohortDTO, 0, len(cohorts)),
	}
	month1, withMonth1 := decimal.Zero, 0
	for _, c := range cohorts {
		cd := dto.CohortDTO{Month: c.Month, Size: c.Size, Retention: make([]dto.CohortPointDTO, 0, len(c.Retention))}
		for _, r := range c.Retention {
			cd.Retention = append(cd.Retention, dto.CohortPointDTO{
				Offset:  r.Offset,
				Month:   r.Month,
				Active:  r.Active,
				RatePct: r2(r.RatePct),
			})
			if r.Offset == 1 {
				month1 = month1.Add(r.RatePct)
				withMonth1++
			}
		}
		out.Summary.Clients += c.Size
		out.Cohorts = append(out.Cohorts, cd)
	}
	out.Summary.Cohorts = len(cohorts)
	out.Summary.AvgMonth1RatePct = r2(metrics.SafeDiv(month1, decimal.NewFromInt(int64(withMonth1)), decimal.Zero))
	return out, nil
}
