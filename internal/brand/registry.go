package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/google/uuid"
)

// ErrNoActiveBrand is returned when resolution cannot even fall back,
// meaning the registry holds no active brand at all.
var ErrNoActiveBrand = errors.New("no active brand configured")

// BrandConfig is one entry of brands.json.
type BrandConfig struct {
	ID                string `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	Domain            string `json:"domain"`
	PrimaryColor      string `json:"primary_color"`
	Tagline           string `json:"tagline"`
	ContactPhone      string `json:"contact_phone"`
	ContactEmail      string `json:"contact_email"`
	TargetDemographic string `json:"target_demographic"`
	IsActive          bool   `json:"is_active"`
}

type BrandsFile struct {
	Brands []BrandConfig `json:"brands"`
}

// Registry is the in-memory brand catalog. Brands are reference data seeded
// out-of-band; the registry loads them once at startup and serves every
// lookup without touching the database.
type Registry struct {
	mu     sync.RWMutex
	brands map[string]*models.Brand // keyed by slug
	order  []string                 // registration order, for the fallback pick
}

func NewRegistry() *Registry {
	return &Registry{
		brands: make(map[string]*models.Brand),
	}
}

func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brands config: %w", err)
	}

	var file BrandsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse brands config: %w", err)
	}

	registry := NewRegistry()
	for i := range file.Brands {
		b, err := file.Brands[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("brand %q: %w", file.Brands[i].Slug, err)
		}
		registry.Register(b)
	}
	return registry, nil
}

func (c *BrandConfig) toModel() (*models.Brand, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid brand id %q: %w", c.ID, err)
	}
	return &models.Brand{
		ID:                id,
		Slug:              c.Slug,
		Name:              c.Name,
		Domain:            c.Domain,
		PrimaryColor:      c.PrimaryColor,
		Tagline:           c.Tagline,
		ContactPhone:      c.ContactPhone,
		ContactEmail:      c.ContactEmail,
		TargetDemographic: c.TargetDemographic,
		IsActive:          c.IsActive,
	}, nil
}

func (r *Registry) Register(b *models.Brand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.brands[b.Slug]; !exists {
		r.order = append(r.order, b.Slug)
	}
	r.brands[b.Slug] = b
}

func (r *Registry) Get(slug string) *models.Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.brands[slug]
}

func (r *Registry) GetByID(id uuid.UUID) *models.Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, slug := range r.order {
		if b := r.brands[slug]; b.ID == id {
			return b
		}
	}
	return nil
}

func (r *Registry) Exists(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.brands[slug]
	return ok
}

// All returns every brand in registration order.
func (r *Registry) All() []*models.Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*models.Brand, 0, len(r.brands))
	for _, slug := range r.order {
		result = append(result, r.brands[slug])
	}
	return result
}

// Active returns active brands in registration order.
func (r *Registry) Active() []*models.Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*models.Brand, 0, len(r.brands))
	for _, slug := range r.order {
		if b := r.brands[slug]; b.IsActive {
			result = append(result, b)
		}
	}
	return result
}

// DisplayMap returns an id→display map for manually joining brand fields
// onto lead rows. The leads table predates the brands table and the two do
// not share key types cleanly, so queries attach brands in-process.
func (r *Registry) DisplayMap() map[uuid.UUID]models.BrandDisplay {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[uuid.UUID]models.BrandDisplay, len(r.brands))
	for _, b := range r.brands {
		result[b.ID] = b.Display()
	}
	return result
}

// Resolve maps a client-supplied brand identifier to a brand. Funnel
// clients send inconsistent slugs, so matching is deliberately loose:
//
//  1. exact slug match
//  2. derived domain match (slug with separators stripped + ".com")
//  3. fuzzy display-name match
//  4. first active brand
//
// Step 4 can silently attribute a lead to the wrong brand when the client
// sends garbage; it is logged at WARN so misattributed slugs surface in
// monitoring instead of failing the funnel.
func (r *Registry) Resolve(identifier string) (*models.Brand, error) {
	identifier = strings.TrimSpace(identifier)

	if identifier != "" {
		if b := r.Get(identifier); b != nil {
			return b, nil
		}

		derived := normalize(identifier) + ".com"
		fuzzy := normalize(identifier)

		r.mu.RLock()
		for _, slug := range r.order {
			b := r.brands[slug]
			if strings.EqualFold(b.Domain, derived) || normalize(b.Name) == fuzzy {
				r.mu.RUnlock()
				return b, nil
			}
		}
		r.mu.RUnlock()
	}

	active := r.Active()
	if len(active) == 0 {
		return nil, ErrNoActiveBrand
	}
	if identifier != "" {
		slog.Warn("brand identifier did not match, falling back to first active brand",
			"identifier", identifier, "brand_id", active[0].Slug)
	}
	return active[0], nil
}

// normalize lowercases and strips separators so "Veteran Legacy Life",
// "veteran-legacy-life" and "veteranlegacylife" all compare equal.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, s)
}
