package bootstrap

import (
	"travelmate/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SearchConfig { return cfg.Search },
	),
)
