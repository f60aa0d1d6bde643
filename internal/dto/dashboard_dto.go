package dto

import (
	"time"

	"github.com/google/uuid"
)

// BrandMetrics is one brand's slice of the dashboard window.
type BrandMetrics struct {
	BrandID        uuid.UUID `json:"brand_id"`
	Name           string    `json:"name"`
	Domain         string    `json:"domain"`
	PrimaryColor   string    `json:"primary_color"`
	Leads          int       `json:"leads"`
	Applications   int       `json:"applications"`
	ConversionRate float64   `json:"conversion_rate"` // applications/leads*100, 0 when leads == 0
	Revenue        float64   `json:"revenue"`         // sum of application coverage amounts
}

type DashboardTotals struct {
	Leads          int     `json:"leads"`
	Applications   int     `json:"applications"`
	ConversionRate float64 `json:"conversion_rate"`
	ActiveLeads    int     `json:"active_leads"`
	AbandonedLeads int     `json:"abandoned_leads"`
	Revenue        float64 `json:"revenue"`
}

type DashboardResponse struct {
	TimeRange   string          `json:"time_range"`
	StartDate   time.Time       `json:"start_date"`
	Brands      []BrandMetrics  `json:"brands"`
	Totals      DashboardTotals `json:"totals"`
	RecentLeads []LeadWithBrand `json:"recent_leads"`
}
