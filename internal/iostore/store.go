// Package iostore implements db.Store for SQLite files and PostgreSQL
// databases.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iostore

import (
	"context"
	"net/url"
	"strings"

	"github.com/fitengage/fitimport/pkg/db"
)

// Open connects to the database at location and starts the transaction
// of the run. A postgres:// or postgresql:// URL selects PostgreSQL,
// anything else is treated as a SQLite file path.
func Open(ctx context.Context, location string) (db.Store, error) {
	if IsPostgres(location) {
		st, err := openPostgres(ctx, location)
		if err != nil {
			return nil, err
		}
		return st, nil
	}

	st, err := openSQLite(ctx, location)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// IsPostgres reports whether location is a PostgreSQL URL.
func IsPostgres(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "postgres://") ||
		strings.HasPrefix(l, "postgresql://")
}

// Redact hides the password of a database URL. File paths are returned
// unchanged.
func Redact(location string) string {
	if !IsPostgres(location) {
		return location
	}
	u, err := url.Parse(location)
	if err != nil {
		return "postgres://..."
	}
	return u.Redacted()
}
