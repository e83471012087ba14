package model

import (
	"strconv"
	"strings"
)

// CatalogItem is a lookup value: industry, location, category, skill and the education and
// experience lists used by the employee wizard.
type CatalogItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Order   int    `json:"order,omitempty"`
}

// Label is the option text in pickers; locations include their state.
func (c CatalogItem) Label() string {
	if c.State != "" {
		return c.Name + ", " + c.State
	}
	return c.Name
}

// CatalogInput is the create/update payload. State and Country only apply to locations.
type CatalogInput struct {
	Name    string `json:"name"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

func itoa(n int) string { return strconv.Itoa(n) }

// CatalogKind names a catalog collection under /catalogs.
type CatalogKind string

const (
	Industries      CatalogKind = "industries"
	Locations       CatalogKind = "locations"
	Categories      CatalogKind = "categories"
	Skills          CatalogKind = "skills"
	Degrees         CatalogKind = "degrees"
	Universities    CatalogKind = "universities"
	FieldsOfStudy   CatalogKind = "field-of-studies"
	EducationLevels CatalogKind = "education-levels"
	Companies       CatalogKind = "companies"
	JobTitles       CatalogKind = "job-titles"
)

// CatalogKinds lists every known catalog in menu order.
var CatalogKinds = []CatalogKind{
	Industries, Locations, Categories, Skills,
	Degrees, Universities, FieldsOfStudy, EducationLevels, Companies, JobTitles,
}

// ParseCatalogKind accepts a path segment or response key ("field_of_studies").
func ParseCatalogKind(s string) (CatalogKind, bool) {
	for _, k := range CatalogKinds {
		if string(k) == s || k.Key() == s {
			return k, true
		}
	}
	return "", false
}

// Key is the field the backend wraps list responses in.
func (k CatalogKind) Key() string {
	return strings.ReplaceAll(string(k), "-", "_")
}

// Editable reports whether the console may create, update and delete entries.
func (k CatalogKind) Editable() bool {
	switch k {
	case Industries, Locations, Categories, Skills:
		return true
	}
	return false
}
