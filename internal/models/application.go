package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application records a converted lead's policy-level facts. The table may
// be empty in deployments that never wired conversion events; the dashboard
// derives a synthetic set from leads in that case (see adminpanel).
type Application struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"brand_id"`
	LeadID         *uuid.UUID `gorm:"type:uuid;index" json:"lead_id,omitempty"`
	CoverageAmount *float64   `json:"coverage_amount,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
