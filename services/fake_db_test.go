package services

import (
	"context"
	"database/sql"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// failingPool fails every statement, so handler error mapping can be
// driven through real gorm calls without a database.
type failingPool struct {
	err error
}

func (p failingPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, p.err
}

func (p failingPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, p.err
}

func (p failingPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, p.err
}

func (p failingPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}

// openFailingDB returns a gorm handle whose every operation fails with
// an error translated to sentinel, mirroring the TranslateError setup
// used against the real database.
func openFailingDB(t *testing.T, sentinel error) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{TranslatedErr: sentinel}, &gorm.Config{
		ConnPool:       failingPool{err: sentinel},
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening stub db: %v", err)
	}
	return db
}
