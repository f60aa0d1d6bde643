package adminpanel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/brand"
	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidGrade  = errors.New("lead grade must be A-F or empty")
	ErrInvalidStatus = errors.New("invalid status")
)

var validStatuses = map[string]bool{
	models.LeadStatusActive:    true,
	models.LeadStatusContacted: true,
	models.LeadStatusConverted: true,
	models.LeadStatusAbandoned: true,
	models.LeadStatusCompleted: true,
}

// --- Lead admin service ---

type LeadAdminService struct {
	db       *gorm.DB
	registry *brand.Registry
}

func NewLeadAdminService(db *gorm.DB, registry *brand.Registry) *LeadAdminService {
	return &LeadAdminService{db: db, registry: registry}
}

type ListParams struct {
	Search string
	Status string
	Brand  string
	Page   int
	Limit  int
}

type ListResult struct {
	Leads      []dto.LeadWithBrand `json:"leads"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// List filters status/brand at the database and the free-text search
// in-process, then returns one page with brand fields attached.
func (s *LeadAdminService) List(p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 200 {
		p.Limit = 25
	}

	query := s.db.Order("created_at DESC")
	if p.Status != "" && p.Status != "all" {
		query = query.Where("status = ?", strings.ToLower(p.Status))
	}
	if brandID, ok := s.brandFilter(p.Brand); ok {
		query = query.Scopes(brand.ForBrand(brandID))
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}

	if term := strings.ToLower(strings.TrimSpace(p.Search)); term != "" {
		filtered := leads[:0]
		for _, lead := range leads {
			if matchesSearch(&lead, term) {
				filtered = append(filtered, lead)
			}
		}
		leads = filtered
	}

	total := len(leads)
	totalPages := (total + p.Limit - 1) / p.Limit
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	displays := s.registry.DisplayMap()
	page := make([]dto.LeadWithBrand, 0, end-start)
	for _, lead := range leads[start:end] {
		page = append(page, attachBrand(lead, displays))
	}

	return &ListResult{
		Leads:      page,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}, nil
}

func matchesSearch(lead *models.Lead, term string) bool {
	for _, field := range []string{
		lead.FirstName, lead.LastName, lead.Email,
		lead.Phone, lead.SessionID, lead.MilitaryStatus,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (s *LeadAdminService) Get(id uuid.UUID) (*dto.LeadWithBrand, error) {
	var lead models.Lead
	if err := s.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	row := attachBrand(lead, s.registry.DisplayMap())
	return &row, nil
}

// Update applies a partial status/score/grade patch and returns the
// refreshed row with brand fields.
func (s *LeadAdminService) Update(id uuid.UUID, patch dto.LeadUpdate) (*dto.LeadWithBrand, error) {
	updates := map[string]interface{}{}
	if patch.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*patch.Status))
		if !validStatuses[status] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *patch.Status)
		}
		updates["status"] = status
	}
	if patch.LeadScore != nil {
		updates["lead_score"] = *patch.LeadScore
	}
	if patch.LeadGrade != nil {
		grade := strings.ToUpper(strings.TrimSpace(*patch.LeadGrade))
		if grade != "" && (len(grade) != 1 || grade[0] < 'A' || grade[0] > 'F') {
			return nil, ErrInvalidGrade
		}
		updates["lead_grade"] = grade
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Lead{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrLeadNotFound
		}
	}

	return s.Get(id)
}

func (s *LeadAdminService) brandFilter(identifier string) (uuid.UUID, bool) {
	if identifier == "" || identifier == "all" {
		return uuid.Nil, false
	}
	if id, err := uuid.Parse(identifier); err == nil {
		return id, true
	}
	if b := s.registry.Get(identifier); b != nil {
		return b.ID, true
	}
	return uuid.Nil, false
}

func attachBrand(lead models.Lead, displays map[uuid.UUID]models.BrandDisplay) dto.LeadWithBrand {
	row := dto.LeadWithBrand{Lead: lead}
	if display, ok := displays[lead.BrandID]; ok {
		row.Brand = &display
	}
	return row
}

// --- Dashboard service ---

type DashboardService struct {
	db       *gorm.DB
	registry *brand.Registry
}

func NewDashboardService(db *gorm.DB, registry *brand.Registry) *DashboardService {
	return &DashboardService{db: db, registry: registry}
}

// startDate maps a time-range keyword to its window start.
func startDate(timeRange string, now time.Time) time.Time {
	switch timeRange {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		return now.AddDate(0, 0, -30)
	default: // week
		return now.AddDate(0, 0, -7)
	}
}

// Metrics aggregates the selected window into per-brand and overall
// figures plus the ten most recent leads.
func (s *DashboardService) Metrics(timeRange, selectedBrand string) (*dto.DashboardResponse, error) {
	start := startDate(timeRange, time.Now())

	brandID, brandFiltered := s.brandFilter(selectedBrand)

	leadQuery := s.db.Where("created_at >= ?", start).Order("created_at DESC")
	if brandFiltered {
		leadQuery = leadQuery.Scopes(brand.ForBrand(brandID))
	}
	var leads []models.Lead
	if err := leadQuery.Find(&leads).Error; err != nil {
		return nil, err
	}

	applications := s.applicationsInWindow(start, brandID, brandFiltered, leads)

	leadsByBrand := make(map[uuid.UUID]int)
	var activeLeads, abandonedLeads int
	for _, lead := range leads {
		leadsByBrand[lead.BrandID]++
		switch strings.ToLower(lead.Status) {
		case models.LeadStatusActive:
			activeLeads++
		case models.LeadStatusAbandoned:
			abandonedLeads++
		}
	}

	appsByBrand := make(map[uuid.UUID]int)
	revenueByBrand := make(map[uuid.UUID]float64)
	var totalRevenue float64
	for _, app := range applications {
		appsByBrand[app.BrandID]++
		if app.CoverageAmount != nil {
			revenueByBrand[app.BrandID] += *app.CoverageAmount
			totalRevenue += *app.CoverageAmount
		}
	}

	var brandMetrics []dto.BrandMetrics
	for _, b := range s.registry.Active() {
		if brandFiltered && b.ID != brandID {
			continue
		}
		metrics := dto.BrandMetrics{
			BrandID:      b.ID,
			Name:         b.Name,
			Domain:       b.Domain,
			PrimaryColor: b.PrimaryColor,
			Leads:        leadsByBrand[b.ID],
			Applications: appsByBrand[b.ID],
			Revenue:      revenueByBrand[b.ID],
		}
		metrics.ConversionRate = conversionRate(metrics.Applications, metrics.Leads)
		brandMetrics = append(brandMetrics, metrics)
	}

	displays := s.registry.DisplayMap()
	recent := make([]dto.LeadWithBrand, 0, 10)
	for _, lead := range leads {
		if len(recent) == 10 {
			break
		}
		recent = append(recent, attachBrand(lead, displays))
	}

	return &dto.DashboardResponse{
		TimeRange: timeRange,
		StartDate: start,
		Brands:    brandMetrics,
		Totals: dto.DashboardTotals{
			Leads:          len(leads),
			Applications:   len(applications),
			ConversionRate: conversionRate(len(applications), len(leads)),
			ActiveLeads:    activeLeads,
			AbandonedLeads: abandonedLeads,
			Revenue:        totalRevenue,
		},
		RecentLeads: recent,
	}, nil
}

// applicationsInWindow reads the applications table; when it is absent or
// empty a synthetic set is derived from converted/terminal-step leads.
// The derived view is never persisted.
func (s *DashboardService) applicationsInWindow(start time.Time, brandID uuid.UUID, brandFiltered bool, leads []models.Lead) []models.Application {
	query := s.db.Where("created_at >= ?", start)
	if brandFiltered {
		query = query.Scopes(brand.ForBrand(brandID))
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err == nil && len(applications) > 0 {
		return applications
	}

	derived := make([]models.Application, 0)
	for _, lead := range leads {
		if strings.EqualFold(lead.Status, models.LeadStatusConverted) || lead.CurrentStep >= models.FunnelFinalStep {
			leadID := lead.ID
			derived = append(derived, models.Application{
				BrandID:        lead.BrandID,
				LeadID:         &leadID,
				CoverageAmount: lead.CoverageAmount,
				CreatedAt:      lead.CreatedAt,
			})
		}
	}
	return derived
}

func (s *DashboardService) brandFilter(identifier string) (uuid.UUID, bool) {
	if identifier == "" || identifier == "all" {
		return uuid.Nil, false
	}
	if id, err := uuid.Parse(identifier); err == nil {
		return id, true
	}
	if b := s.registry.Get(identifier); b != nil {
		return b.ID, true
	}
	return uuid.Nil, false
}

// conversionRate is applications/leads*100; exactly 0 when there are no
// leads so an empty brand never propagates a division by zero.
func conversionRate(applications, leads int) float64 {
	if leads == 0 {
		return 0
	}
	return float64(applications) / float64(leads) * 100
}
