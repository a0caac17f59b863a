package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
)

func TestGroups_UniversoConocido(t *testing.T) {
	g := metrics.NewGroups(0, 1, 2, 3, 4, 5, 6)
	g.At(3).Observe(2, d("10"), d("4"))
	g.At(3).Observe(1, d("30"), d("12"))

	assert.Equal(t, 7, g.Len(), "los 7 grupos aparecen aunque no tengan actividad")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, g.Keys())

	b, ok := g.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 2, b.Count)
	assert.Equal(t, 3, b.Units)
	assert.True(t, d("40").Equal(b.Revenue))
	assert.True(t, d("24").Equal(b.Profit()))
	assert.True(t, d("10").Equal(b.Min))
	assert.True(t, d("30").Equal(b.Max))
	assert.True(t, d("20").Equal(b.Average()))

	empty, _ := g.Get(0)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, empty.Average().IsZero())
}

func TestGroups_ClavesNuevasAlFinal(t *testing.T) {
	g := metrics.NewGroups("a")
	g.At("b").Observe(1, decimal.Zero, decimal.Zero)
	assert.Equal(t, []string{"a", "b"}, g.Keys())
}
