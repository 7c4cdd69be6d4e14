package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module wires metrics against the default prometheus registry.
var Module = fx.Provide(
	func() prometheus.Registerer { return prometheus.DefaultRegisterer },
	New,
)
