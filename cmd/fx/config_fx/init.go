package config_fx

import (
	"go.uber.org/fx"
	"wingman/internal/infra"
)

var Module = fx.Provide(provideConfig)

func provideConfig() *infra.Config {
	return infra.LoadConfig()
}
