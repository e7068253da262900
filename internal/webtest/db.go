package webtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DB opens a throwaway database and hands back a transaction that is rolled
// back when the test finishes. Whatever the test writes never hits the
// underlying file, so tests sharing helpers stay independent.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	return Transactional(t, DBWithCommit(t))
}

// Transactional wraps an already opened database in a transaction rolled back
// when the test finishes.
func Transactional(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("%+v", errors.WithStack(tx.Error))
	}

	t.Cleanup(func() {
		if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	})

	return tx
}

// DBWithCommit opens a throwaway database without the rollback wrapper, for
// tests that exercise transaction boundaries themselves or serve the database
// from another goroutine.
func DBWithCommit(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "storefront.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	rawDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// A single connection keeps the in-transaction harness and WAL mode
	// coherent on a file-backed sqlite database.
	rawDB.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = wal",
		"PRAGMA foreign_keys = on",
		"PRAGMA busy_timeout = 5000",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	t.Cleanup(func() {
		if err := rawDB.Close(); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	})

	return db
}
