package metrics_fx

import (
	"go.uber.org/fx"

	"astrasafe/pkg/metrics"
)

var Module = fx.Provide(metrics.New)
