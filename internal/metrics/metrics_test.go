package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.OrdersCreated.Inc()
	m.SlotsReserved.Add(3)
	m.ReservationConflicts.Inc()
	m.LedgerDrift.Set(2)

	if got := testutil.ToFloat64(m.OrdersCreated); got != 1 {
		t.Errorf("OrdersCreated = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SlotsReserved); got != 3 {
		t.Errorf("SlotsReserved = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.ReservationConflicts); got != 1 {
		t.Errorf("ReservationConflicts = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.LedgerDrift); got != 2 {
		t.Errorf("LedgerDrift = %v, want 2", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 6 {
		t.Errorf("registered %d metric families, want 6", len(families))
	}
}
