package dto

import (
	"github.com/legacylifegroup/funnel-backend/internal/models"
)

// LeadData is the open payload a funnel step submission carries. Every call
// is expected to resend the cumulative form_data document collected so far;
// the server replaces the stored document wholesale rather than merging.
type LeadData struct {
	SessionID      string                 `json:"session_id"`
	BrandID        string                 `json:"brand_id"` // slug form, resolved loosely
	CurrentStep    int                    `json:"current_step"`
	Status         string                 `json:"status"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	MilitaryStatus string                 `json:"military_status"`
	CoverageAmount *float64               `json:"coverage_amount"`
	FormData       map[string]interface{} `json:"form_data"`
}

type CaptureLeadRequest struct {
	LeadData LeadData `json:"leadData"`
}

type CaptureLeadResponse struct {
	Success   bool         `json:"success"`
	Data      *models.Lead `json:"data"`
	Operation string       `json:"operation"` // "created" or "updated"
}

// LeadUpdate is the admin panel's partial patch. Nil pointers leave the
// column untouched.
type LeadUpdate struct {
	Status    *string `json:"status"`
	LeadScore *int    `json:"lead_score"`
	LeadGrade *string `json:"lead_grade"`
}

// LeadWithBrand attaches brand display fields to a lead row. The join is
// done in-process against the registry; a dangling brand reference yields
// a null brand, never a failed query.
type LeadWithBrand struct {
	models.Lead
	Brand *models.BrandDisplay `json:"brand"`
}
