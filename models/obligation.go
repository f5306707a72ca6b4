package models

// Obligation represents a recurring fiscal duty owed by a client (a tax filing,
// a declaration, a payment). Root obligations with AutoGenerate set act as
// templates: each period the engine spawns a child instance carrying
// ParentObligationID and GeneratedFor.
type Obligation struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Description        *string     `json:"description"`
	ClientID           string      `json:"client_id"`
	TaxID              *string     `json:"tax_id"`
	DueDay             int         `json:"due_day"`   // 1-31
	DueMonth           *int        `json:"due_month"` // 1-12, required for annual/quarterly
	Frequency          Frequency   `json:"frequency"`
	WeekendRule        WeekendRule `json:"weekend_rule"`
	Status             Status      `json:"status"`
	AutoGenerate       bool        `json:"auto_generate"`
	ParentObligationID *string     `json:"parent_obligation_id"`
	GeneratedFor       *string     `json:"generated_for"` // "YYYY-MM" period of a generated instance
	CreatedAt          string      `json:"created_at"`    // ISO-8601
	CompletedAt        *string     `json:"completed_at"`
	// Computed fields
	ClientName *string `json:"client_name,omitempty"`
	TaxName    *string `json:"tax_name,omitempty"`
}

// IsTemplate reports whether the obligation is a root record eligible to spawn
// next-period instances.
func (o *Obligation) IsTemplate() bool {
	return o.AutoGenerate && o.ParentObligationID == nil
}

// ObligationInput is used for creating/updating obligations.
type ObligationInput struct {
	Name         string      `json:"name"`
	Description  *string     `json:"description"`
	ClientID     string      `json:"client_id"`
	TaxID        *string     `json:"tax_id"`
	DueDay       int         `json:"due_day"`
	DueMonth     *int        `json:"due_month"`
	Frequency    Frequency   `json:"frequency"`
	WeekendRule  WeekendRule `json:"weekend_rule"`
	Status       Status      `json:"status"`
	AutoGenerate bool        `json:"auto_generate"`
	CompletedAt  *string     `json:"completed_at"`
}

func (o *ObligationInput) Validate() string {
	if o.Name == "" {
		return "name is required"
	}
	if o.ClientID == "" {
		return "client_id is required"
	}
	if o.DueDay < 1 || o.DueDay > 31 {
		return "due_day must be between 1 and 31"
	}
	if o.DueMonth != nil && (*o.DueMonth < 1 || *o.DueMonth > 12) {
		return "due_month must be between 1 and 12"
	}
	if o.Frequency == "" {
		o.Frequency = FrequencyMonthly
	}
	if !o.Frequency.Valid() {
		return "frequency must be one of: monthly, quarterly, annual, custom"
	}
	if (o.Frequency == FrequencyAnnual || o.Frequency == FrequencyQuarterly) && o.DueMonth == nil {
		return "due_month is required for annual and quarterly obligations"
	}
	if o.WeekendRule == "" {
		o.WeekendRule = WeekendPostpone
	}
	if !o.WeekendRule.Valid() {
		return "weekend_rule must be one of: postpone, anticipate, keep"
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if !o.Status.Valid() {
		return "status must be one of: pending, completed, overdue"
	}
	return ""
}
