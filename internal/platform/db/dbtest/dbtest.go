// Package dbtest はアダプターテスト用のインメモリSQLiteデータベースを提供します。
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"investiguide_backend/internal/platform/db"
)

// NewSQLite はテスト用のインメモリSQLiteデータベースを準備し、modelsをマイグレーションします。
// ":memory:" は接続ごとに別のDBになるため、接続数を1に固定します。
func NewSQLite(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb, models...), "failed to migrate tables")
	return gdb
}
