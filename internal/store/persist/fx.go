package persist

import (
	"os"

	"github.com/smallbiznis/facture/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Module = fx.Module("store.persist",
	fx.Provide(NewDB),
	fx.Provide(func(db *gorm.DB, cfg config.Config, log *zap.Logger) (*Repository, error) {
		return NewRepository(db, cfg.StoreName, log)
	}),
	fx.Invoke(Attach),
)

// NewDB opens the client-local sqlite file backing the session cache.
func NewDB(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(cfg.StorePath()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	log.Info("session cache opened", zap.String("path", cfg.StorePath()))
	return db, nil
}
