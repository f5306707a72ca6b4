package models

import "strings"

// Tax represents a periodic tax charge. The "YYYY-MM" prefix of CreatedAt
// encodes the period the record was generated for; at most one tax with a
// given name exists per period.
type Tax struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DueDay      *int    `json:"due_day"` // taxes without a due day are never auto-generated
	CreatedAt   string  `json:"created_at"`
}

// GeneratedFor reports whether the tax was generated for the given period.
func (t *Tax) GeneratedFor(period string) bool {
	return strings.HasPrefix(t.CreatedAt, period)
}

// TaxInput is used for creating/updating taxes.
type TaxInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DueDay      *int    `json:"due_day"`
}

func (t *TaxInput) Validate() string {
	if t.Name == "" {
		return "name is required"
	}
	if t.DueDay != nil && (*t.DueDay < 1 || *t.DueDay > 31) {
		return "due_day must be between 1 and 31"
	}
	return ""
}
