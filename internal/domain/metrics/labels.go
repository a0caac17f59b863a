package metrics

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// MonthName nombre del mes en español.
func MonthName(m time.Month) string { return monthNames[m-1] }

// WeekdayName nombre del día en español (time.Sunday = 0).
func WeekdayName(d time.Weekday) string { return weekdayNames[d] }

// MonthLabel etiqueta legible, ej: "Febrero 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
}

// HourLabel etiqueta de una franja horaria, ej: "09:00".
func HourLabel(h int) string { return fmt.Sprintf("%02d:00", h) }
