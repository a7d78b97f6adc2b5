// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"investiguide_backend/internal/platform/config"
)

// retryInterval は接続リトライの間隔です。
const retryInterval = 3 * time.Second

// Config はデータベース接続に必要な情報を保持します。
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfig はアプリケーション設定からDB接続設定を取り出します。
func LoadConfig(cfg config.DatabaseConfig) Config {
	return Config{
		User:         cfg.User,
		Password:     cfg.Password,
		Name:         cfg.Name,
		Host:         cfg.Host,
		Port:         cfg.Port,
		SSLMode:      cfg.SSLMode,
		InstanceName: cfg.InstanceName,
	}
}

// BuildDSN はPostgreSQL用のDSN文字列を生成します。
// InstanceNameが設定されている場合はCloud SQLのUnixソケットを優先します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// gormConfig はドライバ固有エラーをgormのエラー（ErrDuplicatedKeyなど）に変換します。
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// OpenPostgres はPostgreSQLへ接続するOpenerです。
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), gormConfig())
}

// OpenSQLite はSQLiteファイル（または ":memory:"）を開きます。
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), gormConfig())
}

// ConnectWithRetry は接続に成功するかtimeoutを過ぎるまでopenerを繰り返し呼び出します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open は設定されたドライバでデータベースを開きます。
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Driver == "sqlite" {
		slog.Info("using sqlite", "path", cfg.SQLitePath)
		return OpenSQLite(cfg.SQLitePath)
	}
	return ConnectWithRetry(BuildDSN(LoadConfig(cfg)), cfg.ConnectTimeout, OpenPostgres)
}

// Migrate は渡されたモデルのテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
