package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
markup: "4"
discounts:
  - min_quantity: 2000
    rate: "0.10"
services:
  - id: "1977"
    name: Page Likes
    rate: "2.00"
    min: 100
    max: 5000
  - id: "9"
    name: Instagram Likes
    rate: "1.00"
    min: 10
    max: 100
    link_pattern: '^https://instagram\.com/.+'
`

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Services, 6)

	svc, ok := catalog.Lookup("1977")
	require.True(t, ok)
	assert.Equal(t, "Facebook Page Likes", svc.Name)
	assert.True(t, decimal.RequireFromString("2.50").Equal(svc.Rate))
	assert.Equal(t, 1000, svc.Min)
	assert.Equal(t, 100000, svc.Max)
	assert.True(t, decimal.NewFromInt(5).Equal(catalog.Markup))
}

func TestParseCatalog(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		catalog, err := ParseCatalog([]byte(testCatalogYAML))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(4).Equal(catalog.Markup))
		require.Len(t, catalog.Discounts, 1)
		require.Len(t, catalog.Services, 2)

		ig, ok := catalog.Lookup("9")
		require.True(t, ok)
		assert.NoError(t, ig.ValidateOrder("https://instagram.com/p/1", 50))
		assert.Error(t, ig.ValidateOrder("https://facebook.com/p/1", 50))
	})

	t.Run("Invalid rate", func(t *testing.T) {
		_, err := ParseCatalog([]byte("services:\n  - id: \"1\"\n    rate: cheap\n    min: 1\n    max: 2\n"))
		assert.Error(t, err)
	})

	t.Run("Invalid pattern", func(t *testing.T) {
		_, err := ParseCatalog([]byte("services:\n  - id: \"1\"\n    rate: \"1\"\n    min: 1\n    max: 2\n    link_pattern: \"([\"\n"))
		assert.Error(t, err)
	})

	t.Run("Duplicate service", func(t *testing.T) {
		data := "services:\n  - id: \"1\"\n    rate: \"1\"\n    min: 1\n    max: 2\n  - id: \"1\"\n    rate: \"1\"\n    min: 1\n    max: 2\n"
		_, err := ParseCatalog([]byte(data))
		assert.Error(t, err)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		_, err := ParseCatalog([]byte("services: ["))
		assert.Error(t, err)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		catalog, err := LoadCatalog("")

		require.NoError(t, err)
		assert.Len(t, catalog.Services, 6)
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

		catalog, err := LoadCatalog(path)

		require.NoError(t, err)
		assert.Len(t, catalog.Services, 2)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
