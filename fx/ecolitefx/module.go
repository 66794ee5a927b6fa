// Package ecolitefx provides an fx module for a catalog validator.
// Metrics are reported through the application's zap logger.
package ecolitefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/ecolite"
	"github.com/discochess/ecolite/internal/stats"
	"github.com/discochess/ecolite/internal/stats/logger"
)

// Module provides a *ecolite.Validator.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("ecolite",
	fx.Provide(
		newStatsCollector,
		newValidator,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("ecolite.stats"))
}

// Params holds dependencies for creating the validator.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
}

func newValidator(p Params) (*ecolite.Validator, error) {
	return ecolite.New(
		ecolite.WithLogger(p.Logger.Named("ecolite")),
		ecolite.WithStats(p.Collector),
	)
}
