package recurrence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fiscaldesk/portal/models"
)

// Store is the persistence collaborator the engine runs against. Loads return
// the full current snapshot of a kind; saves are upserts keyed by identity and
// either succeed or fail distinguishably.
type Store interface {
	ListObligations(ctx context.Context) ([]models.Obligation, error)
	SaveObligation(ctx context.Context, o models.Obligation) error
	ListTaxes(ctx context.Context) ([]models.Tax, error)
	SaveTax(ctx context.Context, t models.Tax) error
	ListInstallments(ctx context.Context) ([]models.Installment, error)
	SaveInstallment(ctx context.Context, i models.Installment) error
}

// Result summarizes a generation run.
type Result struct {
	Generated int    `json:"generated"`
	Message   string `json:"message"`
}

const skippedMessage = "Recurrence generation skipped. Not the first day of the month."

// Engine orchestrates a generation run: gate check, snapshot load, period-guard
// filtering, next-period generation, persistence.
type Engine struct {
	store Store
	log   *slog.Logger
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, log: slog.Default().With("component", "recurrence")}
}

// Run executes one generation pass for the period of now. It is safe to call
// repeatedly: outside the first day of the month it is a no-op, and within a
// period already-generated records are detected and skipped. On a failed save
// the run aborts without rollback and the result reports how many records were
// persisted before the failure.
func (e *Engine) Run(ctx context.Context, now time.Time) (Result, error) {
	period := CurrentPeriod(now)

	if !ShouldGenerate(now) {
		e.log.Debug("generation skipped", "period", period, "day", now.UTC().Day())
		return Result{Message: skippedMessage}, nil
	}

	e.log.Info("starting automatic recurrence generation", "period", period)

	var (
		obligations  []models.Obligation
		taxes        []models.Tax
		installments []models.Installment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		obligations, err = e.store.ListObligations(gctx)
		return err
	})
	g.Go(func() (err error) {
		taxes, err = e.store.ListTaxes(gctx)
		return err
	})
	g.Go(func() (err error) {
		installments, err = e.store.ListInstallments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("loading snapshot: %w", err)
	}

	result := Result{}

	if err := e.generateObligations(ctx, obligations, period, now, &result); err != nil {
		return result, err
	}
	if err := e.generateTaxes(ctx, taxes, period, &result); err != nil {
		return result, err
	}
	if err := e.generateInstallments(ctx, installments, now, period, &result); err != nil {
		return result, err
	}

	result.Message = fmt.Sprintf("Automatic recurrence generation complete. Generated %d items.", result.Generated)
	e.log.Info("recurrence generation complete", "period", period, "generated", result.Generated)
	return result, nil
}

func (e *Engine) generateObligations(ctx context.Context, obligations []models.Obligation, period string, now time.Time, result *Result) error {
	for _, tpl := range obligations {
		if !tpl.IsTemplate() {
			continue
		}
		if hasInstanceForPeriod(obligations, tpl.ID, period) {
			continue
		}
		next := NextObligation(tpl, period, now)
		if err := e.store.SaveObligation(ctx, next); err != nil {
			if errors.Is(err, ErrDuplicateGeneration) {
				// A concurrent run won the race; nothing lost.
				e.log.Warn("obligation already generated by concurrent run", "obligation", tpl.ID, "period", period)
				continue
			}
			return fmt.Errorf("saving obligation instance (parent %s, period %s): %w", tpl.ID, period, err)
		}
		e.log.Info("obligation generated", "name", next.Name, "period", period)
		result.Generated++
	}
	return nil
}

func (e *Engine) generateTaxes(ctx context.Context, taxes []models.Tax, period string, result *Result) error {
	// Prior periods leave a generated copy per name behind, so several
	// candidates can share one name. The guard is keyed by name and covers
	// both the loaded snapshot and the saves made within this run.
	generated := make(map[string]bool)
	for _, t := range taxes {
		if t.GeneratedFor(period) {
			generated[t.Name] = true
		}
	}

	for _, tax := range taxes {
		if tax.DueDay == nil || generated[tax.Name] {
			continue
		}
		next := NextTax(tax, period)
		if err := e.store.SaveTax(ctx, next); err != nil {
			if errors.Is(err, ErrDuplicateGeneration) {
				e.log.Warn("tax already generated by concurrent run", "name", tax.Name, "period", period)
				generated[tax.Name] = true
				continue
			}
			return fmt.Errorf("saving tax %q for period %s: %w", tax.Name, period, err)
		}
		generated[tax.Name] = true
		e.log.Info("tax generated", "name", next.Name, "period", period)
		result.Generated++
	}
	return nil
}

func (e *Engine) generateInstallments(ctx context.Context, installments []models.Installment, now time.Time, period string, result *Result) error {
	// No existence re-check here: advancing CurrentInstallment is itself the
	// progression marker, so each run moves every open plan forward one step.
	for _, inst := range installments {
		if !inst.AutoGenerate || inst.Exhausted() {
			continue
		}
		next := NextInstallment(inst, now)
		if err := e.store.SaveInstallment(ctx, next); err != nil {
			return fmt.Errorf("saving installment %s (%d/%d) for period %s: %w",
				inst.ID, next.CurrentInstallment, next.InstallmentCount, period, err)
		}
		e.log.Info("installment generated", "name", next.Name,
			"progress", fmt.Sprintf("%d/%d", next.CurrentInstallment, next.InstallmentCount), "period", period)
		result.Generated++
	}
	return nil
}

// hasInstanceForPeriod is the data-level period guard for obligations.
func hasInstanceForPeriod(obligations []models.Obligation, parentID, period string) bool {
	for _, o := range obligations {
		if o.ParentObligationID != nil && *o.ParentObligationID == parentID &&
			o.GeneratedFor != nil && *o.GeneratedFor == period {
			return true
		}
	}
	return false
}
