package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wingman/internal/infra"
)

var Module = fx.Provide(provideDB)

// provideDB may return nil; repositories treat a nil handle as the store
// being unavailable and the app keeps serving in degraded mode.
func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
