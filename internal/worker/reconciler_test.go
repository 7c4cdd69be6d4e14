package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"slotdesk/internal/domain/model"
	"slotdesk/internal/metrics"
)

type usageSourceStub struct {
	usage []model.SlotUsage
	err   error
	calls atomic.Int64
}

func (s *usageSourceStub) SlotUsage(context.Context) ([]model.SlotUsage, error) {
	s.calls.Add(1)
	return s.usage, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestReconcilerAuditReportsDrift(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.New(prometheus.NewRegistry())

	source := &usageSourceStub{usage: []model.SlotUsage{
		{AccountID: 1, AccountEmail: "clean@x.io", CurrentUsers: 2, ActiveQuantity: 2},
		{AccountID: 2, AccountEmail: "drifted@x.io", CurrentUsers: 3, ActiveQuantity: 1},
	}}

	r := NewReconciler(source, time.Minute, logger, m)
	r.audit(context.Background())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one drift entry, got %d: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["account_email"] != "drifted@x.io" {
		t.Errorf("entry = %v", entry)
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
}

func TestReconcilerAuditCleanLedgerStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.New(prometheus.NewRegistry())

	source := &usageSourceStub{usage: []model.SlotUsage{
		{AccountID: 1, CurrentUsers: 1, ActiveQuantity: 1},
	}}

	r := NewReconciler(source, time.Minute, logger, m)
	r.audit(context.Background())

	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestReconcilerAuditSourceFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := metrics.New(prometheus.NewRegistry())

	source := &usageSourceStub{err: errors.New("connection refused")}
	r := NewReconciler(source, time.Minute, logger, m)
	r.audit(context.Background())

	if !strings.Contains(buf.String(), "audit failed") {
		t.Errorf("expected failure log, got: %s", buf.String())
	}
}

func TestReconcilerStartStop(t *testing.T) {
	source := &usageSourceStub{}
	r := NewReconciler(source, 5*time.Millisecond, discardLogger(), metrics.New(prometheus.NewRegistry()))

	r.Start(context.Background())

	deadline := time.After(time.Second)
	for source.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("audit never ran")
		case <-time.After(time.Millisecond):
		}
	}

	r.Stop()
	after := source.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if source.calls.Load() != after {
		t.Error("audit kept running after Stop")
	}
}

func TestReconcilerStopWithoutStart(t *testing.T) {
	r := NewReconciler(&usageSourceStub{}, time.Minute, discardLogger(), metrics.New(prometheus.NewRegistry()))
	r.Stop()
}

func TestNewReconcilerDefaultsInterval(t *testing.T) {
	r := NewReconciler(&usageSourceStub{}, 0, discardLogger(), metrics.New(prometheus.NewRegistry()))
	if r.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", r.interval)
	}
}
