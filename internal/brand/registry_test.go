package brand

import (
	"testing"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register(&models.Brand{
		ID:       uuid.MustParse("7b0d1f62-4a3e-4f0b-9c2e-1f5a9d8e6c01"),
		Slug:     "veteran-legacy-life",
		Name:     "Veteran Legacy Life",
		Domain:   "veteranlegacylife.com",
		IsActive: true,
	})
	r.Register(&models.Brand{
		ID:       uuid.MustParse("f4c9a2d7-8b15-4e6a-b3d0-72e8c5f1a902"),
		Slug:     "senior-shield-coverage",
		Name:     "Senior Shield Coverage",
		Domain:   "seniorshieldcoverage.com",
		IsActive: true,
	})
	r.Register(&models.Brand{
		ID:       uuid.MustParse("c1d5b7e9-30a2-4c8f-95d6-4e7a1f8b2c04"),
		Slug:     "heritage-life-direct",
		Name:     "Heritage Life Direct",
		Domain:   "heritagelifedirect.com",
		IsActive: false,
	})
	return r
}

func TestResolveExactSlug(t *testing.T) {
	r := testRegistry()
	b, err := r.Resolve("senior-shield-coverage")
	require.NoError(t, err)
	assert.Equal(t, "Senior Shield Coverage", b.Name)
}

func TestResolveDerivedDomain(t *testing.T) {
	r := testRegistry()
	// slug with separators stripped + ".com" matches the brand domain
	b, err := r.Resolve("veteran_legacy_life")
	require.NoError(t, err)
	assert.Equal(t, "veteran-legacy-life", b.Slug)
}

func TestResolveFuzzyName(t *testing.T) {
	r := testRegistry()
	b, err := r.Resolve("Senior Shield Coverage")
	require.NoError(t, err)
	assert.Equal(t, "senior-shield-coverage", b.Slug)
}

func TestResolveInactiveBrandStillMatchesDirectly(t *testing.T) {
	// direct matches are honored even for inactive brands; only the
	// fallback pick is restricted to active ones
	r := testRegistry()
	b, err := r.Resolve("heritage-life-direct")
	require.NoError(t, err)
	assert.False(t, b.IsActive)
}

func TestResolveFallsBackToFirstActive(t *testing.T) {
	r := testRegistry()

	b, err := r.Resolve("no-such-brand")
	require.NoError(t, err)
	assert.Equal(t, "veteran-legacy-life", b.Slug)

	b, err = r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "veteran-legacy-life", b.Slug)
}

func TestResolveNoActiveBrand(t *testing.T) {
	r := NewRegistry()
	r.Register(&models.Brand{ID: uuid.New(), Slug: "retired", Name: "Retired", IsActive: false})

	_, err := r.Resolve("anything")
	assert.ErrorIs(t, err, ErrNoActiveBrand)
}

func TestActivePreservesRegistrationOrder(t *testing.T) {
	r := testRegistry()
	active := r.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "veteran-legacy-life", active[0].Slug)
	assert.Equal(t, "senior-shield-coverage", active[1].Slug)
}

func TestDisplayMap(t *testing.T) {
	r := testRegistry()
	displays := r.DisplayMap()
	require.Len(t, displays, 3)

	d, ok := displays[uuid.MustParse("7b0d1f62-4a3e-4f0b-9c2e-1f5a9d8e6c01")]
	require.True(t, ok)
	assert.Equal(t, "Veteran Legacy Life", d.Name)
	assert.Equal(t, "veteranlegacylife.com", d.Domain)
}

func TestGetByID(t *testing.T) {
	r := testRegistry()
	b := r.GetByID(uuid.MustParse("f4c9a2d7-8b15-4e6a-b3d0-72e8c5f1a902"))
	require.NotNil(t, b)
	assert.Equal(t, "senior-shield-coverage", b.Slug)

	assert.Nil(t, r.GetByID(uuid.New()))
}
