package recurrence

import (
	"time"

	"github.com/google/uuid"

	"github.com/fiscaldesk/portal/models"
)

// Next-period constructors. All three are pure: they copy the source record
// into a fresh-identity value for the target period and leave existence
// checking to the engine. The source record is never modified.

// NextObligation builds the target period's instance of a template obligation.
func NextObligation(template models.Obligation, period string, now time.Time) models.Obligation {
	parentID := template.ID
	return models.Obligation{
		ID:                 uuid.NewString(),
		Name:               template.Name,
		Description:        template.Description,
		ClientID:           template.ClientID,
		TaxID:              template.TaxID,
		DueDay:             template.DueDay,
		DueMonth:           template.DueMonth,
		Frequency:          template.Frequency,
		WeekendRule:        template.WeekendRule,
		Status:             models.StatusPending,
		AutoGenerate:       template.AutoGenerate,
		ParentObligationID: &parentID,
		GeneratedFor:       &period,
		CreatedAt:          now.UTC().Format(time.RFC3339),
	}
}

// NextTax builds the target period's copy of a tax. CreatedAt is stamped on
// the first day of the period so its "YYYY-MM" prefix is the period itself,
// which is what the period guard matches on.
func NextTax(source models.Tax, period string) models.Tax {
	return models.Tax{
		ID:          uuid.NewString(),
		Name:        source.Name,
		Description: source.Description,
		DueDay:      source.DueDay,
		CreatedAt:   period + "-01T00:00:00Z",
	}
}

// NextInstallment builds the next payment of an installment plan. The caller
// must have verified CurrentInstallment < InstallmentCount; the increment
// itself is the plan's progression marker.
func NextInstallment(source models.Installment, now time.Time) models.Installment {
	return models.Installment{
		ID:                 uuid.NewString(),
		Name:               source.Name,
		ClientID:           source.ClientID,
		TaxID:              source.TaxID,
		InstallmentCount:   source.InstallmentCount,
		CurrentInstallment: source.CurrentInstallment + 1,
		DueDay:             source.DueDay,
		FirstDueDate:       source.FirstDueDate,
		WeekendRule:        source.WeekendRule,
		AutoGenerate:       source.AutoGenerate,
		Recurrence:         source.Recurrence,
		RecurrenceInterval: source.RecurrenceInterval,
		Status:             models.StatusPending,
		CreatedAt:          now.UTC().Format(time.RFC3339),
	}
}
