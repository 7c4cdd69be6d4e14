package usecase

import (
	"go.uber.org/fx"

	"slotdesk/internal/config"
	"slotdesk/internal/pkg/idgen"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(cfg *config.Config) *idgen.Generator { return idgen.New(cfg.WorkerID) },
	NewOrderUseCase,
	NewAccountUseCase,
)
