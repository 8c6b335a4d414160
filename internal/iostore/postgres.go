package iostore

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fitengage/fitimport/pkg/member"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgInsertSQL = `INSERT INTO members (name, email, phone, membership_type_id, membership_start, membership_end, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// pgStore implements db.Store with a single pgx connection.
type pgStore struct {
	conn *pgx.Conn
	tx   pgx.Tx
}

func openPostgres(ctx context.Context, location string) (*pgStore, error) {
	conn, err := pgx.Connect(ctx, location)
	if err != nil {
		return nil, OpenError(Redact(location), err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		conn.Close(ctx)
		return nil, BeginError(err)
	}

	slog.Debug("Opened PostgreSQL database", "url", Redact(location))
	return &pgStore{conn: conn, tx: tx}, nil
}

// Insert adds one member inside a savepoint. PostgreSQL aborts the
// whole transaction on any error, so a rejected row is rolled back to
// its savepoint.
func (p *pgStore) Insert(ctx context.Context, m member.Member) error {
	if p.tx == nil {
		return NotOpenError()
	}

	sp, err := p.tx.Begin(ctx)
	if err != nil {
		return InsertError(m.Name, err)
	}

	if _, err = sp.Exec(ctx, pgInsertSQL, m.Values()...); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return InsertError(m.Name, rbErr)
		}
		if isPgConstraint(err) {
			return ConstraintError(err)
		}
		return InsertError(m.Name, err)
	}

	if err = sp.Commit(ctx); err != nil {
		return InsertError(m.Name, err)
	}
	return nil
}

// Commit makes inserted rows durable.
func (p *pgStore) Commit(ctx context.Context) error {
	if p.tx == nil {
		return NotOpenError()
	}
	tx := p.tx
	p.tx = nil
	if err := tx.Commit(ctx); err != nil {
		return CommitError(err)
	}
	return nil
}

// Close rolls back uncommitted rows and closes the connection.
func (p *pgStore) Close() error {
	if p.conn == nil {
		return nil
	}
	ctx := context.Background()
	if p.tx != nil {
		if err := p.tx.Rollback(ctx); err != nil {
			slog.Warn("Cannot roll back transaction", "error", err)
		}
		p.tx = nil
	}
	err := p.conn.Close(ctx)
	p.conn = nil
	return err
}

// isPgConstraint reports whether err belongs to SQLSTATE class 23,
// integrity constraint violation.
func isPgConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "23")
}
