package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", errors.New("UNIQUE constraint failed: users.username"), true},
		{"record not found", gorm.ErrRecordNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

// TestIsUniqueViolation_SQLite は実際のSQLiteの一意制約違反が検出されることを検証します。
func TestIsUniqueViolation_SQLite(t *testing.T) {
	t.Parallel()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	type account struct {
		ID       uint   `gorm:"primaryKey"`
		Username string `gorm:"uniqueIndex"`
	}
	require.NoError(t, Migrate(db, &account{}))
	require.NoError(t, db.Create(&account{Username: "alice"}).Error)

	err = db.Create(&account{Username: "alice"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
