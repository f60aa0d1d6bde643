package mail

import (
	"testing"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "N/A", FormatCurrency(nil))

	amount := 250000.0
	assert.Equal(t, "$250,000", FormatCurrency(&amount))

	small := 500.0
	assert.Equal(t, "$500", FormatCurrency(&small))

	million := 1500000.0
	assert.Equal(t, "$1,500,000", FormatCurrency(&million))
}

func TestRender(t *testing.T) {
	out := Render("Hello {{first_name}}, welcome to {{brand_name}}", map[string]string{
		"first_name": "John",
		"brand_name": "Veteran Legacy Life",
	})
	assert.Equal(t, "Hello John, welcome to Veteran Legacy Life", out)
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	out := Render("{{unknown}}", map[string]string{"first_name": "John"})
	assert.Equal(t, "{{unknown}}", out)
}

func TestTemplateVarsNilBrand(t *testing.T) {
	lead := &models.Lead{FirstName: "Jane", SessionID: "s1"}
	vars := TemplateVars(lead, nil)
	assert.Equal(t, "Jane", vars["first_name"])
	assert.Equal(t, "", vars["brand_name"])
	assert.Equal(t, "#1a1a2e", vars["brand_color"])
	assert.Equal(t, "N/A", vars["coverage_amount"])
}

func TestTemplateVarsWithBrand(t *testing.T) {
	coverage := 100000.0
	lead := &models.Lead{FirstName: "Jane", CoverageAmount: &coverage}
	b := &models.Brand{Name: "Senior Shield", Tagline: "Protect what matters", PrimaryColor: "#004080"}

	vars := TemplateVars(lead, b)
	assert.Equal(t, "Senior Shield", vars["brand_name"])
	assert.Equal(t, "#004080", vars["brand_color"])
	assert.Equal(t, "$100,000", vars["coverage_amount"])
}

func TestLoadTemplateDefaultsWithoutDB(t *testing.T) {
	tmpl := LoadTemplate(nil, models.TemplateClientCompletion)
	assert.Equal(t, models.TemplateClientCompletion, tmpl.TemplateID)
	assert.Contains(t, tmpl.Subject, "{{brand_name}}")
}

func TestLoadTemplatePrefersStoredRow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EmailTemplate{}))

	require.NoError(t, db.Create(&models.EmailTemplate{
		TemplateID: models.TemplateClientCompletion,
		Subject:    "Custom subject",
		HTMLBody:   "<p>custom</p>",
	}).Error)

	tmpl := LoadTemplate(db, models.TemplateClientCompletion)
	assert.Equal(t, "Custom subject", tmpl.Subject)

	// missing key still falls back to the hardcoded default
	fallback := LoadTemplate(db, models.TemplateRepCompletion)
	assert.Contains(t, fallback.Subject, "New completed lead")
}
