// Package metrics contiene las funciones puras de agregación que usan los reportes de negocio:
// ventanas de tiempo, acumuladores por grupo y las fórmulas derivadas (margen, rotación, ROI,
// ABC, fidelidad, venta cruzada, simulaciones, pronóstico y cohortes).
//
// Nada en este paquete accede a la base de datos ni guarda estado entre llamadas.
package metrics

import (
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// DateLayout formato de fecha aceptado en startDate/endDate.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Window rango de tiempo semiabierto [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// TrailingDays ventana de los últimos n días hasta now.
func TrailingDays(now time.Time, n int) Window {
	return Window{From: now.AddDate(0, 0, -n), To: now}
}

// TrailingMonths ventana de los últimos n meses hasta now.
func TrailingMonths(now time.Time, n int) Window {
	return Window{From: now.AddDate(0, -n, 0), To: now}
}

// ResolveWindow construye la ventana de un reporte.
// startDate/endDate (YYYY-MM-DD) tienen prioridad sobre la ventana por defecto de defDays días;
// endDate incluye el día completo. Fechas mal formadas devuelven domain.ErrInvalidInput.
func ResolveWindow(now time.Time, startDate, endDate string, defDays int) (Window, error) {
	end := now
	if endDate != "" {
		t, err := time.ParseInLocation(DateLayout, endDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("%w: endDate %q", domain.ErrInvalidInput, endDate)
		}
		end = t.AddDate(0, 0, 1)
	}

	start := end.AddDate(0, 0, -defDays)
	if startDate != "" {
		t, err := time.ParseInLocation(DateLayout, startDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("%w: startDate %q", domain.ErrInvalidInput, startDate)
		}
		start = t
	}

	if !start.Before(end) {
		return Window{}, fmt.Errorf("%w: startDate debe ser anterior a endDate", domain.ErrInvalidInput)
	}
	return Window{From: start, To: end}, nil
}

// Contains indica si t cae dentro de la ventana.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Days duración de la ventana en días calendario, redondeada hacia arriba: el menor n tal que
// From + n días (AddDate) alcanza To. Un cambio de horario dentro de la ventana no la alarga.
func (w Window) Days() int {
	if !w.From.Before(w.To) {
		return 0
	}
	n := int(w.To.Sub(w.From) / day)
	for n > 0 && !w.From.AddDate(0, 0, n-1).Before(w.To) {
		n--
	}
	for w.From.AddDate(0, 0, n).Before(w.To) {
		n++
	}
	return n
}

// CalendarDays devuelve cada día calendario (YYYY-MM-DD) que toca la ventana, en orden.
func (w Window) CalendarDays() []string {
	var out []string
	d := startOfDay(w.From)
	for d.Before(w.To) {
		out = append(out, d.Format(DateLayout))
		d = d.AddDate(0, 0, 1)
	}
	return out
}

// StartDate y EndDate etiquetas del período para la respuesta; EndDate es el último día incluido.
func (w Window) StartDate() string { return w.From.Format(DateLayout) }
func (w Window) EndDate() string   { return w.To.Add(-time.Nanosecond).Format(DateLayout) }

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth primer instante del mes de t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthKey clave YYYY-MM del mes de t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthsBetween meses calendario completos entre los meses de a y b (b >= a).
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
