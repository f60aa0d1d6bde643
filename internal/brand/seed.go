package brand

import (
	"log/slog"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTable mirrors the registry into the brands table so SQL joins and
// foreign keys stay valid. Upserts by primary key; reference data in the
// file always wins.
func SeedTable(db *gorm.DB, r *Registry) error {
	brands := r.All()
	if len(brands) == 0 {
		return nil
	}

	rows := make([]models.Brand, 0, len(brands))
	for _, b := range brands {
		rows = append(rows, *b)
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"slug", "name", "domain", "primary_color", "tagline",
			"contact_phone", "contact_email", "target_demographic",
			"is_active", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return err
	}

	slog.Info("brand table seeded", "brands", len(rows))
	return nil
}
