package metrics_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestResolveWindow_PorDefecto(t *testing.T) {
	w, err := metrics.ResolveWindow(now, "", "", 30)
	require.NoError(t, err)
	assert.Equal(t, now, w.To)
	assert.Equal(t, now.AddDate(0, 0, -30), w.From)
	assert.Equal(t, 30, w.Days())
}

func TestResolveWindow_FechasExplicitas(t *testing.T) {
	w, err := metrics.ResolveWindow(now, "2026-01-01", "2026-01-31", 30)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), w.To, "endDate incluye el día completo")
	assert.Equal(t, 31, w.Days())
	assert.Equal(t, "2026-01-31", w.EndDate())
	assert.True(t, w.Contains(time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(w.To), "la ventana es semiabierta")
}

func TestResolveWindow_SoloEndDate(t *testing.T) {
	w, err := metrics.ResolveWindow(now, "", "2026-01-10", 7)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-04", w.StartDate())
	assert.Equal(t, 7, w.Days())
}

func TestResolveWindow_FechaInvalida(t *testing.T) {
	_, err := metrics.ResolveWindow(now, "01/02/2026", "", 30)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = metrics.ResolveWindow(now, "2026-02-10", "2026-02-01", 30)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "inicio posterior al fin")
}

func TestWindow_CalendarDays(t *testing.T) {
	w, err := metrics.ResolveWindow(now, "2026-02-27", "2026-03-02", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, w.CalendarDays())

	trailing := metrics.TrailingDays(now, 7)
	assert.Len(t, trailing.CalendarDays(), 8, "la ventana móvil toca 8 días calendario")
}

func TestMonthsBetween(t *testing.T) {
	a := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, metrics.MonthsBetween(a, b))
	assert.Equal(t, "2025-11", metrics.MonthKey(a))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Marzo 2026", metrics.MonthLabel(now))
	assert.Equal(t, "Domingo", metrics.WeekdayName(time.Sunday))
	assert.Equal(t, "09:00", metrics.HourLabel(9))
}

func TestResolveWindow_CambioDeHorario(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	// el 2026-10-25 se atrasa el reloj una hora (25 h de día)
	local := time.Date(2026, 11, 1, 12, 0, 0, 0, madrid)

	w, err := metrics.ResolveWindow(local, "", "", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, w.Days(), "la hora extra no agrega un día")
	assert.Len(t, w.CalendarDays(), 31)

	w, err = metrics.ResolveWindow(local, "2026-10-25", "2026-10-25", 30)
	require.NoError(t, err)
	assert.True(t, w.To.Equal(time.Date(2026, 10, 26, 0, 0, 0, 0, madrid)), "endDate cubre hasta medianoche: %s", w.To)
	assert.True(t, w.Contains(time.Date(2026, 10, 25, 23, 30, 0, 0, madrid)))
	assert.Equal(t, 1, w.Days())
	assert.Equal(t, "2026-10-25", w.EndDate())

	// adelanto de marzo (23 h de día)
	w, err = metrics.ResolveWindow(local, "2026-03-29", "2026-03-29", 30)
	require.NoError(t, err)
	assert.True(t, w.To.Equal(time.Date(2026, 3, 30, 0, 0, 0, 0, madrid)))
	assert.Equal(t, 1, w.Days())
}
