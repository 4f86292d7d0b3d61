package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/config"
	"github.com/jaythan-dev/projeto-concessionaria/models"
)

type fakeSQLiteError struct {
	code int
	msg  string
}

func (e *fakeSQLiteError) Error() string { return e.msg }
func (e *fakeSQLiteError) Code() int     { return e.code }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "gorm not found", err: gorm.ErrRecordNotFound, want: KindNotFound},
		{name: "wrapped not found", err: fmt.Errorf("find: %w", gorm.ErrRecordNotFound), want: KindNotFound},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: KindForeignKey},
		{name: "mysql delete parent", err: &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, want: KindForeignKey},
		{name: "mysql add child", err: &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, want: KindForeignKey},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, want: KindUnknown},
		{name: "mysql invalid conn", err: mysql.ErrInvalidConn, want: KindUnavailable},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKey},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: KindUnknown},
		{name: "sqlite extended foreign key", err: &fakeSQLiteError{code: 787, msg: "FOREIGN KEY constraint failed"}, want: KindForeignKey},
		{name: "sqlite primary constraint", err: &fakeSQLiteError{code: 19, msg: "FOREIGN KEY constraint failed"}, want: KindForeignKey},
		{name: "sqlite not null", err: &fakeSQLiteError{code: 1299, msg: "NOT NULL constraint failed"}, want: KindUnknown},
		{name: "bad conn", err: driver.ErrBadConn, want: KindUnavailable},
		{name: "other", err: errors.New("boom"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "foreign_key", KindForeignKey.String())
	assert.Equal(t, "unavailable", KindUnavailable.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, "silent")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	return db
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Ping(context.Background(), db))
	assert.True(t, db.Migrator().HasTable(&models.Brand{}))
	assert.True(t, db.Migrator().HasTable(&models.Owner{}))
	assert.True(t, db.Migrator().HasTable(&models.Car{}))
}

func TestSQLiteEnforcesForeignKeys(t *testing.T) {
	db := openTestDB(t)

	err := db.Create(&models.Car{Model: "Corolla", Year: 2020, BrandID: 42, OwnerID: 42}).Error
	require.Error(t, err)
	assert.Equal(t, KindForeignKey, Classify(err))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: config.DriverMemory}, "silent")
	assert.Error(t, err)
}
