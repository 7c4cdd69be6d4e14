package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"slotdesk/internal/domain/model"
	"slotdesk/internal/metrics"
)

// UsageSource exposes the subset of application functionality the reconciler needs.
type UsageSource interface {
	SlotUsage(ctx context.Context) ([]model.SlotUsage, error)
}

// Reconciler periodically audits the slot ledger: for every account, the stored
// current_users counter must equal the quantity sum of existing order items.
// Drift is reported, never repaired, because slot counters only move through
// reserve and release inside order transactions.
type Reconciler struct {
	source   UsageSource
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReconciler constructs the audit worker.
func NewReconciler(source UsageSource, interval time.Duration, logger *slog.Logger, m *metrics.Metrics) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reconciler{source: source, interval: interval, logger: logger, metrics: m}
}

// Start launches background auditing.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the audit loop to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.audit(ctx)
		}
	}
}

func (r *Reconciler) audit(ctx context.Context) {
	usage, err := r.source.SlotUsage(ctx)
	if err != nil {
		r.logger.Error("slot usage audit failed", slog.String("error", err.Error()))
		return
	}

	drifted := 0
	for _, u := range usage {
		if u.Drift() == 0 {
			continue
		}
		drifted++
		r.logger.Warn("slot ledger drift",
			slog.Int64("account_id", u.AccountID),
			slog.String("account_email", u.AccountEmail),
			slog.Int("current_users", u.CurrentUsers),
			slog.Int("active_quantity", u.ActiveQuantity),
		)
	}
	r.metrics.LedgerDrift.Set(float64(drifted))
}
