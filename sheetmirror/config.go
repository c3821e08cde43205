// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package sheetmirror

import (
	"fmt"
)

// Section identifies one mirrored entity category. Each section maps to a
// dedicated sheet inside an external spreadsheet document.
type Section string

const (
	SectionServices     Section = "services"
	SectionPortfolios   Section = "portfolios"
	SectionPricing      Section = "pricing"
	SectionTestimonials Section = "testimonials"
	SectionContact      Section = "contact"
)

// Sections lists every mirrored section.
var Sections = []Section{
	SectionServices,
	SectionPortfolios,
	SectionPricing,
	SectionTestimonials,
	SectionContact,
}

// Valid reports whether s is a known section name.
func (s Section) Valid() bool {
	switch s {
	case SectionServices, SectionPortfolios, SectionPricing, SectionTestimonials, SectionContact:
		return true
	default:
		return false
	}
}

// SectionConfig addresses one section inside the external document store.
// The sheet MUST have a header row, and the header row must contain IDColumn.
type SectionConfig struct {
	SpreadsheetID string
	SheetName     string
	IDColumn      string
}

// Mapping maps each mirrored section to its document address. Sections left
// out of the mapping (or with a blank spreadsheet id) are treated as not
// configured, which downgrades all mirror traffic for them to no-ops at the
// outbox level.
type Mapping map[Section]SectionConfig

// For resolves the config for a section. An unknown or unconfigured section
// returns ErrNotConfigured.
func (m Mapping) For(section Section) (SectionConfig, error) {
	if !section.Valid() {
		return SectionConfig{}, fmt.Errorf("%w: unknown section %q", ErrNotConfigured, section)
	}
	cfg, ok := m[section]
	if !ok || cfg.SpreadsheetID == "" || cfg.SheetName == "" {
		return SectionConfig{}, fmt.Errorf("%w: section %q has no spreadsheet mapping", ErrNotConfigured, section)
	}
	if cfg.IDColumn == "" {
		cfg.IDColumn = "id"
	}
	return cfg, nil
}
