// Package testutil 提供測試共用的資料庫輔助函式。
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"guest_management/internal/models"
	"guest_management/internal/storage"
)

// NewDB 在 t.TempDir() 中建立已完成遷移的 SQLite 資料庫
func NewDB(t testing.TB) *storage.DB {
	t.Helper()

	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
