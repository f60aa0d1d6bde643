package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lead statuses. Funnel submissions arrive with free-form casing, so
// comparisons are case-insensitive at the service layer.
const (
	LeadStatusActive    = "active"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusAbandoned = "abandoned"
	LeadStatusCompleted = "completed"
)

// FunnelFinalStep is the terminal step of the intake funnel. Leads that
// reach it count as applications even if their status was never flipped.
const FunnelFinalStep = 18

// Lead is one prospect's progress through a funnel. At most one row exists
// per session id; every step submission upserts against it. FormData holds
// the cumulative answer document and is replaced wholesale on each call.
type Lead struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      string         `gorm:"size:100;not null;uniqueIndex" json:"session_id"`
	BrandID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"brand_id"`
	CurrentStep    int            `gorm:"default:1" json:"current_step"`
	Status         string         `gorm:"size:30;not null;index" json:"status"`
	LeadScore      *int           `json:"lead_score,omitempty"`
	LeadGrade      string         `gorm:"size:2" json:"lead_grade,omitempty"`
	FirstName      string         `gorm:"size:100" json:"first_name,omitempty"`
	LastName       string         `gorm:"size:100" json:"last_name,omitempty"`
	Email          string         `gorm:"size:200;index" json:"email,omitempty"`
	Phone          string         `gorm:"size:30" json:"phone,omitempty"`
	MilitaryStatus string         `gorm:"size:50" json:"military_status,omitempty"`
	CoverageAmount *float64       `json:"coverage_amount,omitempty"`
	FormData       datatypes.JSON `gorm:"type:jsonb" json:"form_data"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// IsCompleted reports whether the lead finished the funnel.
func (l *Lead) IsCompleted() bool {
	return strings.EqualFold(l.Status, LeadStatusCompleted)
}
