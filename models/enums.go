package models

// Frequency is the recurrence cycle of an obligation.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyCustom    Frequency = "custom"
)

// WeekendRule is the policy for moving a due date off a weekend.
type WeekendRule string

const (
	WeekendPostpone   WeekendRule = "postpone"
	WeekendAnticipate WeekendRule = "anticipate"
	WeekendKeep       WeekendRule = "keep"
)

// Status is the lifecycle state of an obligation or installment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual, FrequencyCustom:
		return true
	}
	return false
}

func (r WeekendRule) Valid() bool {
	switch r {
	case WeekendPostpone, WeekendAnticipate, WeekendKeep:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}
