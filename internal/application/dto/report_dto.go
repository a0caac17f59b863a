package dto

import "strconv"

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportQuery parámetros comunes de los reportes de /api/business.
// Los valores cero significan "usar el valor por defecto del reporte".
type ReportQuery struct {
	Days       int      `query:"days" validate:"min=0,max=3650"`
	Months     int      `query:"months" validate:"min=0,max=120"`
	Limit      int      `query:"limit" validate:"min=0,max=1000"`
	Threshold  *int     `query:"threshold" validate:"omitempty,min=0"`
	StartDate  string   `query:"startDate"`                                   // YYYY-MM-DD; tiene prioridad sobre days
	EndDate    string   `query:"endDate"`                                     // YYYY-MM-DD; incluye el día completo
	MinSupport *float64 `query:"minSupport" validate:"omitempty,min=0,max=1"` // nil = 0.01; 0 devuelve todos los pares
	Year       int      `query:"year" validate:"omitempty,min=1970,max=9999"`
}

// ── Envelope ──────────────────────────────────────────────────────────────────

// PeriodDTO rango de fechas resuelto del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// DaysOrNA cantidad de días o "N/A" cuando no se puede calcular.
type DaysOrNA struct {
	Days  int
	Valid bool
}

// MarshalJSON escribe el número o "N/A".
func (d DaysOrNA) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte(`"N/A"`), nil
	}
	return []byte(strconv.Itoa(d.Days)), nil
}
