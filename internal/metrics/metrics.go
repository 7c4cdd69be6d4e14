package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts order lifecycle events and slot churn.
type Metrics struct {
	OrdersCreated        prometheus.Counter
	OrdersDeleted        prometheus.Counter
	SlotsReserved        prometheus.Counter
	SlotsReleased        prometheus.Counter
	ReservationConflicts prometheus.Counter
	LedgerDrift          prometheus.Gauge
}

// New registers metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "slotdesk_orders_created_total",
			Help: "Orders successfully committed.",
		}),
		OrdersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "slotdesk_orders_deleted_total",
			Help: "Orders deleted with their slots released.",
		}),
		SlotsReserved: factory.NewCounter(prometheus.CounterOpts{
			Name: "slotdesk_slots_reserved_total",
			Help: "Slots consumed by committed orders.",
		}),
		SlotsReleased: factory.NewCounter(prometheus.CounterOpts{
			Name: "slotdesk_slots_released_total",
			Help: "Slots returned by deleted orders.",
		}),
		ReservationConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "slotdesk_reservation_conflicts_total",
			Help: "Order attempts rejected for insufficient slot capacity.",
		}),
		LedgerDrift: factory.NewGauge(prometheus.GaugeOpts{
			Name: "slotdesk_ledger_drift_accounts",
			Help: "Accounts whose slot counter disagrees with active order items.",
		}),
	}
}
