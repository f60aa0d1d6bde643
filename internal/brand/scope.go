package brand

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForBrand returns a GORM scope that filters by brand_id.
func ForBrand(brandID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("brand_id = ?", brandID)
	}
}
