package metrics

import "github.com/shopspring/decimal"

// Bucket acumulador de un grupo: conteo, unidades, ingresos, costo y extremos por observación.
type Bucket struct {
	Count   int
	Units   int
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Min     decimal.Decimal // menor ingreso observado
	Max     decimal.Decimal // mayor ingreso observado
}

// Observe suma una observación al bucket.
func (b *Bucket) Observe(units int, revenue, cost decimal.Decimal) {
	if b.Count == 0 || revenue.LessThan(b.Min) {
		b.Min = revenue
	}
	if b.Count == 0 || revenue.GreaterThan(b.Max) {
		b.Max = revenue
	}
	b.Count++
	b.Units += units
	b.Revenue = b.Revenue.Add(revenue)
	b.Cost = b.Cost.Add(cost)
}

// Profit ingresos menos costo del bucket.
func (b *Bucket) Profit() decimal.Decimal { return b.Revenue.Sub(b.Cost) }

// Average ingreso medio por observación (0 si no hubo observaciones).
func (b *Bucket) Average() decimal.Decimal {
	return SafeDiv(b.Revenue, decimal.NewFromInt(int64(b.Count)), decimal.Zero)
}

// Groups acumuladores indexados por clave que preservan el orden de aparición.
// Las claves del universo inicial siempre aparecen en el resultado, aunque queden en cero.
type Groups[K comparable] struct {
	order   []K
	buckets map[K]*Bucket
}

// NewGroups crea los grupos con el universo conocido de claves.
func NewGroups[K comparable](universe ...K) *Groups[K] {
	g := &Groups[K]{buckets: make(map[K]*Bucket, len(universe))}
	for _, k := range universe {
		g.At(k)
	}
	return g
}

// At devuelve el bucket de k, creándolo si no existe.
func (g *Groups[K]) At(k K) *Bucket {
	if b, ok := g.buckets[k]; ok {
		return b
	}
	b := &Bucket{}
	g.buckets[k] = b
	g.order = append(g.order, k)
	return b
}

// Get devuelve el bucket de k sin crearlo.
func (g *Groups[K]) Get(k K) (*Bucket, bool) {
	b, ok := g.buckets[k]
	return b, ok
}

// Keys claves en orden de creación.
func (g *Groups[K]) Keys() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)
	return out
}

// Len número de grupos.
func (g *Groups[K]) Len() int { return len(g.order) }
