package funnel

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/legacylifegroup/funnel-backend/internal/mail"
	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OperationCreated = "created"
	OperationUpdated = "updated"
)

type LeadService struct {
	db       *gorm.DB
	registry *brand.Registry
	notifier *mail.Notifier
}

func NewLeadService(db *gorm.DB, registry *brand.Registry, notifier *mail.Notifier) *LeadService {
	return &LeadService{db: db, registry: registry, notifier: notifier}
}

// Upsert applies one funnel step submission: resolve the brand, find or
// create the lead by session id, overwrite the supplied essential fields,
// and replace form_data wholesale. Returns the persisted lead and whether
// the row was created or updated.
//
// Concurrent submissions for the same session are not serialized; the last
// write wins at the database layer.
func (s *LeadService) Upsert(data dto.LeadData) (*models.Lead, string, error) {
	sessionID := data.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	b, err := s.registry.Resolve(data.BrandID)
	if err != nil {
		return nil, "", err
	}

	formData, err := marshalFormData(data.FormData)
	if err != nil {
		return nil, "", err
	}

	// Statuses arrive with free-form casing; store them lowercased so the
	// admin panel's DB-side filters stay exact-match.
	status := strings.ToLower(strings.TrimSpace(data.Status))

	now := time.Now()

	var lead models.Lead
	err = s.db.Where("session_id = ?", sessionID).First(&lead).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		lead = models.Lead{
			SessionID:      sessionID,
			BrandID:        b.ID,
			CurrentStep:    data.CurrentStep,
			Status:         status,
			FirstName:      data.FirstName,
			LastName:       data.LastName,
			Email:          data.Email,
			Phone:          data.Phone,
			MilitaryStatus: data.MilitaryStatus,
			CoverageAmount: data.CoverageAmount,
			FormData:       formData,
			LastActivityAt: now,
		}
		if lead.CurrentStep == 0 {
			lead.CurrentStep = 1
		}
		if lead.Status == "" {
			lead.Status = models.LeadStatusActive
		}
		if err := s.db.Create(&lead).Error; err != nil {
			return nil, "", err
		}
		s.notifyIfCompleted(&lead)
		return &lead, OperationCreated, nil

	case err != nil:
		return nil, "", err
	}

	wasCompleted := lead.IsCompleted()

	updates := map[string]interface{}{
		"form_data":        formData,
		"last_activity_at": now,
	}
	if data.CurrentStep > 0 {
		updates["current_step"] = data.CurrentStep
	}
	if status != "" {
		updates["status"] = status
	}
	if data.FirstName != "" {
		updates["first_name"] = data.FirstName
	}
	if data.LastName != "" {
		updates["last_name"] = data.LastName
	}
	if data.Email != "" {
		updates["email"] = data.Email
	}
	if data.Phone != "" {
		updates["phone"] = data.Phone
	}
	if data.MilitaryStatus != "" {
		updates["military_status"] = data.MilitaryStatus
	}
	if data.CoverageAmount != nil {
		updates["coverage_amount"] = *data.CoverageAmount
	}

	if err := s.db.Model(&lead).Updates(updates).Error; err != nil {
		return nil, "", err
	}
	if err := s.db.First(&lead, "id = ?", lead.ID).Error; err != nil {
		return nil, "", err
	}

	// Only the transition into completed sends mail; retries and
	// post-completion steps re-send the completed status.
	if !wasCompleted {
		s.notifyIfCompleted(&lead)
	}
	return &lead, OperationUpdated, nil
}

// notifyIfCompleted fires the completion email side effect. Failures are
// logged and swallowed; a transient mail outage never fails the lead write.
func (s *LeadService) notifyIfCompleted(lead *models.Lead) {
	if s.notifier == nil || !lead.IsCompleted() || lead.Email == "" {
		return
	}

	b := s.registry.GetByID(lead.BrandID)
	result := s.notifier.SendCompletionEmail(lead, b)
	switch {
	case result.Failed:
		slog.Error("completion email failed",
			"session_id", lead.SessionID, "action", "send_completion_email", "error", result.Error)
	case result.Skipped:
		slog.Info("completion email skipped, mail not configured", "session_id", lead.SessionID)
	default:
		slog.Info("completion email sent", "session_id", lead.SessionID, "to", lead.Email)
	}
}

// List returns leads matching the optional session/brand filters with
// brand display fields attached.
func (s *LeadService) List(sessionID, brandID string) ([]dto.LeadWithBrand, error) {
	query := s.db.Order("created_at DESC")
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	if brandID != "" {
		if id, err := uuid.Parse(brandID); err == nil {
			query = query.Scopes(brand.ForBrand(id))
		} else if b := s.registry.Get(brandID); b != nil {
			query = query.Scopes(brand.ForBrand(b.ID))
		} else {
			// an unmatched brand filter matches nothing, not everything
			return []dto.LeadWithBrand{}, nil
		}
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}

	displays := s.registry.DisplayMap()
	result := make([]dto.LeadWithBrand, 0, len(leads))
	for _, lead := range leads {
		result = append(result, attachBrand(lead, displays))
	}
	return result, nil
}

func attachBrand(lead models.Lead, displays map[uuid.UUID]models.BrandDisplay) dto.LeadWithBrand {
	row := dto.LeadWithBrand{Lead: lead}
	if display, ok := displays[lead.BrandID]; ok {
		row.Brand = &display
	}
	return row
}

func marshalFormData(data map[string]interface{}) (datatypes.JSON, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
