package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoyaltyDTO puntaje de fidelidad desglosado.
type LoyaltyDTO struct {
	Score     int    `json:"score"`
	Recency   int    `json:"recency"`
	Frequency int    `json:"frequency"`
	Monetary  int    `json:"monetary"`
	Segment   string `json:"segment"`
}

// ClientValueDTO GET /api/business/clients/:clientId/value.
type ClientValueDTO struct {
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Email         string          `json:"email"`
	Purchases     int             `json:"purchases"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	FirstPurchase *time.Time      `json:"first_purchase,omitempty"`
	LastPurchase  *time.Time      `json:"last_purchase,omitempty"`
	DaysSinceLast *int            `json:"days_since_last,omitempty"`
	Loyalty       LoyaltyDTO      `json:"loyalty"`
}

// PurchasePredictionDTO GET /api/business/clients/:clientId/predict-purchase.
// Status: "predicted" si hay 2+ compras, "insufficient_data" en otro caso.
type PurchasePredictionDTO struct {
	ClientID        string           `json:"client_id"`
	ClientName      string           `json:"client_name"`
	Purchases       int              `json:"purchases"`
	Status          string           `json:"status"`
	LastPurchase    *time.Time       `json:"last_purchase,omitempty"`
	AvgIntervalDays *decimal.Decimal `json:"avg_interval_days,omitempty"`
	NextPurchase    *string          `json:"next_purchase,omitempty"` // YYYY-MM-DD
	DaysUntilNext   *int             `json:"days_until_next,omitempty"`
}

// ClientSegmentDTO cliente con su segmento.
type ClientSegmentDTO struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Purchases  int             `json:"purchases"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Score      int             `json:"score"`
	Segment    string          `json:"segment"`
}

// SegmentBucketDTO clientes de un segmento.
type SegmentBucketDTO struct {
	Segment    string          `json:"segment"`
	Clients    int             `json:"clients"`
	Revenue    decimal.Decimal `json:"revenue"`
	ClientsPct decimal.Decimal `json:"clients_pct"`
}

// SegmentationSummaryDTO totales de la segmentación.
type SegmentationSummaryDTO struct {
	Clients int             `json:"clients"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SegmentationDTO GET /api/business/clients/segmentation.
type SegmentationDTO struct {
	Summary  SegmentationSummaryDTO `json:"summary"`
	Segments []SegmentBucketDTO     `json:"segments"`
	Clients  []ClientSegmentDTO     `json:"clients"`
}

// ClientRankDTO cliente del ranking por monto comprado.
type ClientRankDTO struct {
	Rank          int             `json:"rank"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Email         string          `json:"email"`
	Purchases     int             `json:"purchases"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	LastPurchase  time.Time       `json:"last_purchase"`
}

// TopClientsSummaryDTO totales del ranking.
type TopClientsSummaryDTO struct {
	Clients int             `json:"clients"` // clientes con compras en la ventana
	Revenue decimal.Decimal `json:"revenue"`
}

// TopClientsDTO GET /api/business/clients/top.
type TopClientsDTO struct {
	Period  PeriodDTO            `json:"period"`
	Limit   int                  `json:"limit"`
	Summary TopClientsSummaryDTO `json:"summary"`
	Clients []ClientRankDTO      `json:"clients"`
}

// CohortPointDTO retención de una cohorte en un mes.
type CohortPointDTO struct {
	Offset  int             `json:"offset"`
	Month   string          `json:"month"`
	Active  int             `json:"active"`
	RatePct decimal.Decimal `json:"rate_pct"`
}

// CohortDTO cohorte de clientes por mes de primera compra.
type CohortDTO struct {
	Month     string           `json:"month"`
	Size      int              `json:"size"`
	Retention []CohortPointDTO `json:"retention"`
}

// RetentionSummaryDTO totales de las cohortes.
type RetentionSummaryDTO struct {
	Cohorts          int             `json:"cohorts"`
	Clients          int             `json:"clients"`
	AvgMonth1RatePct decimal.Decimal `json:"avg_month_1_rate_pct"`
}

// RetentionDTO GET /api/business/clients/retention.
type RetentionDTO struct {
	Period  PeriodDTO           `json:"period"`
	Months  int                 `json:"months"`
	Summary RetentionSummaryDTO `json:"summary"`
	Cohorts []CohortDTO         `json:"cohorts"`
}
