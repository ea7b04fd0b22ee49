package cmd

import (
	"fmt"

	"github.com/rs/zerolog"

	"guest_management/internal/models"
	"guest_management/internal/storage"
	"guest_management/pkg/config"
)

// loadConfig 讀取設定並套用命令列的日誌參數
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	return cfg, config.NewLogger(cfg.Log), nil
}

// openDatabase 開啟資料庫並自動遷移所有模型
func openDatabase(cfg *config.Config, logger zerolog.Logger) (*storage.DB, error) {
	db, err := storage.Open(cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
