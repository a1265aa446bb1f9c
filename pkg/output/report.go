package output

import (
	"github.com/arthur-debert/factory/pkg/registry"
)

// Report is the catalogue of every registry known to the process
type Report struct {
	Registries []RegistryReport `json:"registries" yaml:"registries" toml:"registries"`
}

// RegistryReport describes one interface's registry
type RegistryReport struct {
	Interface  string               `json:"interface" yaml:"interface" toml:"interface"`
	Policy     string               `json:"policy" yaml:"policy" toml:"policy"`
	Sealed     bool                 `json:"sealed" yaml:"sealed" toml:"sealed"`
	Count      int                  `json:"count" yaml:"count" toml:"count"`
	Entries    []registry.EntryInfo `json:"entries" yaml:"entries" toml:"entries"`
	Duplicates []registry.Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty" toml:"duplicates,omitempty"`
}

// Product is the outcome of creating one instance by id
type Product struct {
	Interface   string `json:"interface" yaml:"interface" toml:"interface"`
	ID          string `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// DuplicateReport lists every duplicate registration seen so far
type DuplicateReport struct {
	Duplicates []registry.Duplicate `json:"duplicates" yaml:"duplicates" toml:"duplicates"`
}

// BuildReport snapshots the given catalogs
func BuildReport(cats []registry.Catalog) Report {
	report := Report{Registries: make([]RegistryReport, 0, len(cats))}
	for _, c := range cats {
		report.Registries = append(report.Registries, RegistryReport{
			Interface:  c.Interface(),
			Policy:     c.Policy().String(),
			Sealed:     c.Sealed(),
			Count:      c.Count(),
			Entries:    c.Entries(),
			Duplicates: c.Duplicates(),
		})
	}
	return report
}

// BuildDuplicateReport collects duplicates across the given catalogs
func BuildDuplicateReport(cats []registry.Catalog) DuplicateReport {
	report := DuplicateReport{Duplicates: []registry.Duplicate{}}
	for _, c := range cats {
		report.Duplicates = append(report.Duplicates, c.Duplicates()...)
	}
	return report
}
