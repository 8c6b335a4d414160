package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/fitengage/fitimport/pkg/db"
	"github.com/fitengage/fitimport/pkg/member"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqlStore implements db.Store over database/sql. It is used with the
// modernc SQLite driver.
type sqlStore struct {
	db *sql.DB
	tx *sql.Tx
}

func openSQLite(ctx context.Context, path string) (*sqlStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// one connection serves the whole run
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, OpenError(path, err)
	}

	res, err := newSQLStore(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	slog.Debug("Opened SQLite database", "path", path)
	return res, nil
}

func newSQLStore(ctx context.Context, conn *sql.DB) (*sqlStore, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, BeginError(err)
	}
	return &sqlStore{db: conn, tx: tx}, nil
}

// Insert adds one member. SQLite undoes only the failing statement on a
// constraint violation, the transaction stays usable.
func (s *sqlStore) Insert(ctx context.Context, m member.Member) error {
	if s.tx == nil {
		return NotOpenError()
	}

	_, err := s.tx.ExecContext(ctx, db.InsertSQL, m.Values()...)
	if err == nil {
		return nil
	}
	if isSQLiteConstraint(err) {
		return ConstraintError(sqliteError{err: err})
	}
	return InsertError(m.Name, err)
}

// Commit makes inserted rows durable.
func (s *sqlStore) Commit(ctx context.Context) error {
	if s.tx == nil {
		return NotOpenError()
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return CommitError(err)
	}
	return nil
}

// Close rolls back uncommitted rows and closes the database.
func (s *sqlStore) Close() error {
	if s.db == nil {
		return nil
	}
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil {
			slog.Warn("Cannot roll back transaction", "error", err)
		}
		s.tx = nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// isSQLiteConstraint reports whether err is a SQLITE_CONSTRAINT result,
// including its extended codes (UNIQUE, NOT NULL, CHECK, ...).
func isSQLiteConstraint(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	return sqErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// sqliteError shows only the SQLite message of a driver error, for
// example "UNIQUE constraint failed: members.name".
type sqliteError struct {
	err error
}

func (e sqliteError) Error() string {
	return sqliteMessage(e.err.Error())
}

func (e sqliteError) Unwrap() error {
	return e.err
}

// sqliteMessage removes the result code suffix " (2067)" and the
// "constraint failed: " prefix that modernc adds to SQLite messages.
func sqliteMessage(s string) string {
	if i := strings.LastIndex(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	return strings.TrimPrefix(s, "constraint failed: ")
}
