package brand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBrandsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brands.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeBrandsFile(t, `{
	  "brands": [
	    {
	      "id": "7b0d1f62-4a3e-4f0b-9c2e-1f5a9d8e6c01",
	      "slug": "veteran-legacy-life",
	      "name": "Veteran Legacy Life",
	      "domain": "veteranlegacylife.com",
	      "primary_color": "#1a1a2e",
	      "is_active": true
	    },
	    {
	      "id": "c1d5b7e9-30a2-4c8f-95d6-4e7a1f8b2c04",
	      "slug": "heritage-life-direct",
	      "name": "Heritage Life Direct",
	      "domain": "heritagelifedirect.com",
	      "is_active": false
	    }
	  ]
	}`)

	registry, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, registry.All(), 2)
	require.Len(t, registry.Active(), 1)

	b := registry.Get("veteran-legacy-life")
	require.NotNil(t, b)
	assert.Equal(t, "Veteran Legacy Life", b.Name)
	assert.Equal(t, "#1a1a2e", b.PrimaryColor)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFileBadID(t *testing.T) {
	path := writeBrandsFile(t, `{"brands":[{"id":"not-a-uuid","slug":"x","name":"X"}]}`)
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid brand id")
}

func TestLoadFromFileMalformedJSON(t *testing.T) {
	path := writeBrandsFile(t, `{"brands": [`)
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
