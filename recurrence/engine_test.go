package recurrence

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fiscaldesk/portal/models"
)

type mockStore struct {
	mu           sync.Mutex
	obligations  []models.Obligation
	taxes        []models.Tax
	installments []models.Installment

	listCalls int
	loadErr   error

	saveObligationErr error
	saveTaxErr        error
	failTaxAfter      int // fail the save once this many taxes were saved, 0 disables
	taxSaves          int
}

func (m *mockStore) ListObligations(context.Context) ([]models.Obligation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]models.Obligation(nil), m.obligations...), nil
}

func (m *mockStore) SaveObligation(_ context.Context, o models.Obligation) error {
	if m.saveObligationErr != nil {
		return m.saveObligationErr
	}
	m.obligations = append(m.obligations, o)
	return nil
}

func (m *mockStore) ListTaxes(context.Context) ([]models.Tax, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]models.Tax(nil), m.taxes...), nil
}

func (m *mockStore) SaveTax(_ context.Context, t models.Tax) error {
	if m.saveTaxErr != nil && (m.failTaxAfter == 0 || m.taxSaves >= m.failTaxAfter) {
		return m.saveTaxErr
	}
	m.taxSaves++
	m.taxes = append(m.taxes, t)
	return nil
}

func (m *mockStore) ListInstallments(context.Context) ([]models.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]models.Installment(nil), m.installments...), nil
}

func (m *mockStore) SaveInstallment(_ context.Context, i models.Installment) error {
	m.installments = append(m.installments, i)
	return nil
}

var firstOfJune = time.Date(2025, time.June, 1, 6, 0, 0, 0, time.UTC)

func template(id, name string) models.Obligation {
	return models.Obligation{
		ID:           id,
		Name:         name,
		ClientID:     "client-1",
		DueDay:       20,
		Frequency:    models.FrequencyMonthly,
		WeekendRule:  models.WeekendPostpone,
		Status:       models.StatusPending,
		AutoGenerate: true,
		CreatedAt:    "2025-01-10T00:00:00Z",
	}
}

func TestRun_SkipsOutsideFirstDayOfMonth(t *testing.T) {
	store := &mockStore{obligations: []models.Obligation{template("tpl-1", "DAS")}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), time.Date(2025, time.June, 2, 6, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 0 {
		t.Errorf("expected 0 generated, got %d", result.Generated)
	}
	if !strings.Contains(result.Message, "skipped") {
		t.Errorf("expected a skip message, got %q", result.Message)
	}
	if store.listCalls != 0 {
		t.Errorf("expected no snapshot load on a skipped run, got %d list calls", store.listCalls)
	}
}

func TestRun_GeneratesObligationOncePerPeriod(t *testing.T) {
	store := &mockStore{obligations: []models.Obligation{template("tpl-1", "DAS")}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Fatalf("expected 1 generated, got %d", result.Generated)
	}

	generated := store.obligations[len(store.obligations)-1]
	if generated.ParentObligationID == nil || *generated.ParentObligationID != "tpl-1" {
		t.Errorf("expected instance parented to tpl-1, got %+v", generated)
	}
	if generated.GeneratedFor == nil || *generated.GeneratedFor != "2025-06" {
		t.Errorf("expected instance generated for 2025-06, got %+v", generated)
	}

	// The period guard makes an immediate re-run a no-op for obligations.
	again, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error on re-run: %v", err)
	}
	if again.Generated != 0 {
		t.Errorf("expected 0 generated on re-run, got %d", again.Generated)
	}
}

func TestRun_IgnoresNonTemplates(t *testing.T) {
	manual := template("tpl-1", "DCTF")
	manual.AutoGenerate = false

	parent := "tpl-0"
	period := "2025-05"
	child := template("child-1", "DAS")
	child.ParentObligationID = &parent
	child.GeneratedFor = &period

	store := &mockStore{obligations: []models.Obligation{manual, child}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 0 {
		t.Errorf("expected 0 generated, got %d", result.Generated)
	}
}

func TestRun_GeneratesTaxOncePerPeriod(t *testing.T) {
	store := &mockStore{taxes: []models.Tax{
		{ID: "tax-1", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-05-01T00:00:00Z"},
		{ID: "tax-2", Name: "sem vencimento", CreatedAt: "2025-05-01T00:00:00Z"}, // no due day, never generated
	}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Fatalf("expected 1 generated, got %d", result.Generated)
	}
	generated := store.taxes[len(store.taxes)-1]
	if generated.Name != "ISS" || !generated.GeneratedFor("2025-06") {
		t.Errorf("expected an ISS tax for 2025-06, got %+v", generated)
	}

	again, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error on re-run: %v", err)
	}
	if again.Generated != 0 {
		t.Errorf("expected 0 generated on re-run, got %d", again.Generated)
	}
}

func TestRun_TaxGuardSpansPriorCopies(t *testing.T) {
	// Each month's run leaves a same-name copy behind, and copies keep their
	// due day, so after a few months one name has several candidates. A single
	// run must still produce exactly one copy for the target period.
	store := &mockStore{taxes: []models.Tax{
		{ID: "tax-1", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-03-01T00:00:00Z"},
		{ID: "tax-2", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-04-01T00:00:00Z"},
		{ID: "tax-3", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-05-01T00:00:00Z"},
	}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Errorf("expected 1 generated, got %d", result.Generated)
	}
	count := 0
	for _, tax := range store.taxes {
		if tax.Name == "ISS" && tax.GeneratedFor("2025-06") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one ISS tax for 2025-06, got %d", count)
	}
}

func TestRun_ToleratesDuplicateTaxRace(t *testing.T) {
	store := &mockStore{
		taxes:      []models.Tax{{ID: "tax-1", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-05-01T00:00:00Z"}},
		saveTaxErr: ErrDuplicateGeneration,
	}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("expected a duplicate race to be tolerated, got %v", err)
	}
	if result.Generated != 0 {
		t.Errorf("expected the losing run to count nothing, got %d", result.Generated)
	}
}

func TestRun_AdvancesInstallments(t *testing.T) {
	store := &mockStore{installments: []models.Installment{{
		ID:                 "inst-1",
		Name:               "Parcelamento",
		ClientID:           "client-1",
		InstallmentCount:   3,
		CurrentInstallment: 1,
		DueDay:             15,
		WeekendRule:        models.WeekendPostpone,
		AutoGenerate:       true,
		Recurrence:         models.FrequencyMonthly,
		RecurrenceInterval: 1,
		Status:             models.StatusPending,
	}}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 1 {
		t.Fatalf("expected 1 generated, got %d", result.Generated)
	}
	if got := store.installments[1].CurrentInstallment; got != 2 {
		t.Errorf("expected installment advanced to 2, got %d", got)
	}

	// Unlike obligations and taxes, installments carry no existence re-check:
	// the increment is the progression marker, so a re-run within the same
	// period advances every open plan again.
	again, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error on re-run: %v", err)
	}
	if again.Generated != 2 {
		t.Errorf("expected re-run to advance both open plans, got %d", again.Generated)
	}

	// The loop bound still holds no matter how often generation runs.
	for i := 0; i < 5; i++ {
		if _, err := engine.Run(context.Background(), firstOfJune); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, inst := range store.installments {
		if inst.CurrentInstallment > inst.InstallmentCount {
			t.Errorf("installment %s exceeded its count: %d/%d", inst.ID, inst.CurrentInstallment, inst.InstallmentCount)
		}
	}
}

func TestRun_ExcludesExhaustedInstallments(t *testing.T) {
	store := &mockStore{installments: []models.Installment{{
		ID:                 "inst-1",
		Name:               "Parcelamento",
		ClientID:           "client-1",
		InstallmentCount:   3,
		CurrentInstallment: 3,
		DueDay:             15,
		AutoGenerate:       true,
	}}}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Generated != 0 {
		t.Errorf("expected exhausted plan to be excluded, got %d generated", result.Generated)
	}
}

func TestRun_AbortsWhenLoadFails(t *testing.T) {
	store := &mockStore{
		obligations: []models.Obligation{template("tpl-1", "DAS")},
		loadErr:     errors.New("connection refused"),
	}
	engine := NewEngine(store)

	_, err := engine.Run(context.Background(), firstOfJune)
	if err == nil {
		t.Fatalf("expected an error when the snapshot load fails")
	}
	if len(store.obligations) != 1 {
		t.Errorf("expected no writes after a failed load, got %d obligations", len(store.obligations))
	}
}

func TestRun_ReportsPartialFailure(t *testing.T) {
	store := &mockStore{
		taxes: []models.Tax{
			{ID: "tax-1", Name: "ISS", DueDay: intPtr(10), CreatedAt: "2025-05-01T00:00:00Z"},
			{ID: "tax-2", Name: "ICMS", DueDay: intPtr(20), CreatedAt: "2025-05-01T00:00:00Z"},
		},
		saveTaxErr:   errors.New("disk full"),
		failTaxAfter: 1,
	}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err == nil {
		t.Fatalf("expected an error when a save fails mid-run")
	}
	if result.Generated != 1 {
		t.Errorf("expected the result to report 1 record persisted before the failure, got %d", result.Generated)
	}
	if !strings.Contains(err.Error(), "2025-06") {
		t.Errorf("expected the error to carry the target period, got %v", err)
	}
}

func TestRun_ToleratesDuplicateRace(t *testing.T) {
	store := &mockStore{
		obligations:       []models.Obligation{template("tpl-1", "DAS")},
		saveObligationErr: ErrDuplicateGeneration,
	}
	engine := NewEngine(store)

	result, err := engine.Run(context.Background(), firstOfJune)
	if err != nil {
		t.Fatalf("expected a duplicate race to be tolerated, got %v", err)
	}
	if result.Generated != 0 {
		t.Errorf("expected the losing run to count nothing, got %d", result.Generated)
	}
}
