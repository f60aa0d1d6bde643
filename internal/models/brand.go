package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a marketing persona sharing the same backend. Rows are seeded
// from brands.json at startup and read-only afterwards.
type Brand struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug              string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Name              string    `gorm:"size:200;not null" json:"name"`
	Domain            string    `gorm:"size:200" json:"domain"`
	PrimaryColor      string    `gorm:"size:20" json:"primary_color"`
	Tagline           string    `gorm:"size:300" json:"tagline"`
	ContactPhone      string    `gorm:"size:30" json:"contact_phone"`
	ContactEmail      string    `gorm:"size:200" json:"contact_email"`
	TargetDemographic string    `gorm:"size:100" json:"target_demographic"`
	IsActive          bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BrandDisplay is the subset of brand fields attached to lead responses.
type BrandDisplay struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Domain       string    `json:"domain"`
	PrimaryColor string    `json:"primary_color"`
}

func (b *Brand) Display() BrandDisplay {
	return BrandDisplay{
		ID:           b.ID,
		Name:         b.Name,
		Domain:       b.Domain,
		PrimaryColor: b.PrimaryColor,
	}
}
