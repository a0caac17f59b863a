package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
)

func TestCrossSell_Soporte20Porciento(t *testing.T) {
	baskets := [][]string{
		{"a", "b"}, {"b", "a", "a"},
		{"c", "d"}, {"c", "d"}, {"c", "d"}, {"c", "d"},
		{"e", "f"}, {"e", "f"}, {"e", "f"}, {"a", "c"},
		{"a"}, {"z", "z"}, // no son multi-producto
	}
	pairs, tx := metrics.CrossSell(baskets, metrics.DefaultMinSupport)
	assert.Equal(t, 10, tx, "solo cuentan las transacciones con 2+ productos distintos")

	var ab *metrics.ProductPair
	for i := range pairs {
		if pairs[i].A == "a" && pairs[i].B == "b" {
			ab = &pairs[i]
		}
	}
	require.NotNil(t, ab)
	assert.Equal(t, 2, ab.Count)
	assert.True(t, d("0.2").Equal(ab.Support), "2 de 10 transacciones = 20%%")
	assert.True(t, d("0.6666666666666667").Equal(ab.ConfidenceAB.Round(16)), "a aparece en 3 transacciones")
	assert.True(t, d("1").Equal(ab.ConfidenceBA))

	assert.Equal(t, "c", pairs[0].A, "el par más frecuente va primero")
	assert.Equal(t, "d", pairs[0].B)
}

func TestCrossSell_MinSupportFiltra(t *testing.T) {
	baskets := [][]string{{"a", "b"}, {"c", "d"}, {"c", "d"}, {"c", "d"}}
	pairs, _ := metrics.CrossSell(baskets, d("0.5"))
	require.Len(t, pairs, 1)
	assert.Equal(t, "c", pairs[0].A)
}

func TestCrossSell_SinTransacciones(t *testing.T) {
	pairs, tx := metrics.CrossSell([][]string{{"a"}}, metrics.DefaultMinSupport)
	assert.Equal(t, 0, tx)
	assert.Empty(t, pairs)
}
