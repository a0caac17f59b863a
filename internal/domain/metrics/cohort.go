package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Activity una compra de un cliente.
type Activity struct {
	ClientID string
	Date     time.Time
}

// CohortMonth retención de una cohorte k meses después de su mes inicial.
type CohortMonth struct {
	Offset  int
	Month   string // YYYY-MM
	Active  int
	RatePct decimal.Decimal
}

// Cohort clientes cuya primera compra cae en Month.
type Cohort struct {
	Month     string // YYYY-MM
	Size      int
	Retention []CohortMonth
}

// BuildCohorts agrupa clientes por mes de primera compra (calculado sobre toda la
// actividad recibida) y mide qué fracción vuelve a comprar en cada mes siguiente hasta
// el mes de to. Solo se incluyen las cohortes cuyo mes inicial cae en [from, to).
// El mes 0 es 100 % por construcción.
func BuildCohorts(acts []Activity, from, to time.Time) []Cohort {
	first := map[string]time.Time{}
	for _, a := range acts {
		if a.ClientID == "" {
			continue
		}
		if f, ok := first[a.ClientID]; !ok || a.Date.Before(f) {
			first[a.ClientID] = a.Date
		}
	}

	// clientes activos por mes
	active := map[string]map[string]struct{}{}
	for _, a := range acts {
		if a.ClientID == "" {
			continue
		}
		m := MonthKey(a.Date)
		if active[m] == nil {
			active[m] = map[string]struct{}{}
		}
		active[m][a.ClientID] = struct{}{}
	}

	members := map[string][]string{}
	starts := map[string]time.Time{}
	for id, f := range first {
		if f.Before(StartOfMonth(from)) || !f.Before(to) {
			continue
		}
		m := MonthKey(f)
		members[m] = append(members[m], id)
		starts[m] = StartOfMonth(f)
	}

	keys := make([]string, 0, len(members))
	for m := range members {
		keys = append(keys, m)
	}
	sort.Strings(keys)

	last := to.Add(-time.Nanosecond)
	out := make([]Cohort, 0, len(keys))
	for _, m := range keys {
		ids := members[m]
		size := decimal.NewFromInt(int64(len(ids)))
		c := Cohort{Month: m, Size: len(ids)}
		for k := 0; k <= MonthsBetween(starts[m], last); k++ {
			mk := MonthKey(starts[m].AddDate(0, k, 0))
			n := 0
			for _, id := range ids {
				if _, ok := active[mk][id]; ok {
					n++
				}
			}
			c.Retention = append(c.Retention, CohortMonth{
				Offset:  k,
				Month:   mk,
				Active:  n,
				RatePct: decimal.NewFromInt(int64(n)).Div(size).Mul(hundred),
			})
		}
		out = append(out, c)
	}
	return out
}
