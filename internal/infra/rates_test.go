package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCurrencyTable(t *testing.T) {
	table, err := LoadCurrencyTable()
	require.NoError(t, err)

	assert.Equal(t, "INR", table.Base)
	assert.Equal(t, 1.0, table.Rates["INR"])
	assert.Equal(t, 83.12, table.Rates["USD"])
	assert.Equal(t, "EUR", table.Destinations["Paris"])
	assert.NotEmpty(t, table.Destinations)
}

func TestLoadCurrencyTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	fixture := `base: USD
rates:
  USD: 1.0
  EUR: 1.1
destinations:
  Europe: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	table, err := LoadCurrencyTableFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, 1.1, table.Rates["EUR"])
}

func TestLoadCurrencyTableFromFileMissing(t *testing.T) {
	_, err := LoadCurrencyTableFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseCurrencyTableRejectsBadBase(t *testing.T) {
	_, err := parseCurrencyTable([]byte("rates:\n  USD: 1.0\n"))
	assert.ErrorContains(t, err, "missing base currency")

	_, err = parseCurrencyTable([]byte("base: USD\nrates:\n  EUR: 1.1\n"))
	assert.ErrorContains(t, err, "rate 1.0")

	_, err = parseCurrencyTable([]byte("base: [not valid"))
	assert.ErrorContains(t, err, "parse currency table")
}
