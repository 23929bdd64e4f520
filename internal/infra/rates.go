// Package infra holds the static reference data the agents are constructed
// with. Tables are parsed once at startup and injected as immutable values,
// never exposed as mutable process-wide globals.
package infra

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed rates.yaml
var defaultRatesYAML []byte

// CurrencyTable is the static lookup the currency agent is built from.
// Rates map each currency code to its value in the base currency.
type CurrencyTable struct {
	Base         string             `yaml:"base"`
	Rates        map[string]float64 `yaml:"rates"`
	Destinations map[string]string  `yaml:"destinations"`
}

func LoadCurrencyTable() (*CurrencyTable, error) {
	return parseCurrencyTable(defaultRatesYAML)
}

// LoadCurrencyTableFromFile lets tests and deployments substitute fixtures.
func LoadCurrencyTableFromFile(path string) (*CurrencyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read currency table: %w", err)
	}
	return parseCurrencyTable(raw)
}

func parseCurrencyTable(raw []byte) (*CurrencyTable, error) {
	var table CurrencyTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse currency table: %w", err)
	}
	if table.Base == "" {
		return nil, fmt.Errorf("currency table missing base currency")
	}
	if rate, ok := table.Rates[table.Base]; !ok || rate != 1.0 {
		return nil, fmt.Errorf("base currency %s must carry rate 1.0", table.Base)
	}
	return &table, nil
}
