package models

// Installment represents one payment of a multi-installment plan.
// CurrentInstallment is 1-indexed and advances by exactly one each time the
// engine generates the next payment; generation stops once it reaches
// InstallmentCount.
type Installment struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	ClientID           string      `json:"client_id"`
	TaxID              *string     `json:"tax_id"`
	InstallmentCount   int         `json:"installment_count"`
	CurrentInstallment int         `json:"current_installment"`
	DueDay             int         `json:"due_day"`
	FirstDueDate       *string     `json:"first_due_date"`
	WeekendRule        WeekendRule `json:"weekend_rule"`
	AutoGenerate       bool        `json:"auto_generate"`
	Recurrence         Frequency   `json:"recurrence"`
	RecurrenceInterval int         `json:"recurrence_interval"`
	Status             Status      `json:"status"`
	CreatedAt          string      `json:"created_at"`
	// Computed fields
	ClientName *string `json:"client_name,omitempty"`
}

// Exhausted reports whether the plan has reached its final installment.
func (i *Installment) Exhausted() bool {
	return i.CurrentInstallment >= i.InstallmentCount
}

// InstallmentInput is used for creating/updating installments.
type InstallmentInput struct {
	Name               string      `json:"name"`
	ClientID           string      `json:"client_id"`
	TaxID              *string     `json:"tax_id"`
	InstallmentCount   int         `json:"installment_count"`
	CurrentInstallment int         `json:"current_installment"`
	DueDay             int         `json:"due_day"`
	FirstDueDate       *string     `json:"first_due_date"`
	WeekendRule        WeekendRule `json:"weekend_rule"`
	AutoGenerate       bool        `json:"auto_generate"`
	Recurrence         Frequency   `json:"recurrence"`
	RecurrenceInterval int         `json:"recurrence_interval"`
	Status             Status      `json:"status"`
}

func (i *InstallmentInput) Validate() string {
	if i.Name == "" {
		return "name is required"
	}
	if i.ClientID == "" {
		return "client_id is required"
	}
	if i.InstallmentCount < 1 {
		return "installment_count must be at least 1"
	}
	if i.CurrentInstallment < 1 {
		i.CurrentInstallment = 1
	}
	if i.CurrentInstallment > i.InstallmentCount {
		return "current_installment must not exceed installment_count"
	}
	if i.DueDay < 1 || i.DueDay > 31 {
		return "due_day must be between 1 and 31"
	}
	if i.WeekendRule == "" {
		i.WeekendRule = WeekendPostpone
	}
	if !i.WeekendRule.Valid() {
		return "weekend_rule must be one of: postpone, anticipate, keep"
	}
	if i.Recurrence == "" {
		i.Recurrence = FrequencyMonthly
	}
	if !i.Recurrence.Valid() {
		return "recurrence must be one of: monthly, quarterly, annual, custom"
	}
	if i.RecurrenceInterval < 1 {
		i.RecurrenceInterval = 1
	}
	if i.Status == "" {
		i.Status = StatusPending
	}
	if !i.Status.Valid() {
		return "status must be one of: pending, completed, overdue"
	}
	return ""
}
