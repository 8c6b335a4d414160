package db

import (
	"context"

	"github.com/fitengage/fitimport/pkg/member"
)

// Store defines the interface for writing members into the members table.
//
// A Store holds one connection and one open transaction for its whole
// life. Inserts that violate an integrity constraint are rolled back
// individually and reported with errcode.StoreConstraintError, so
// earlier and later inserts of the same run stay intact.
type Store interface {
	// Insert writes one member row.
	Insert(ctx context.Context, m member.Member) error

	// Commit makes all successful inserts durable. It is called once
	// per run.
	Commit(ctx context.Context) error

	// Close rolls back anything that was not committed and releases
	// the connection. Calling Close more than once is safe.
	Close() error
}

// InsertSQL is the parameterized insert shared by stores that use '?'
// placeholders.
const InsertSQL = `INSERT INTO members (name, email, phone, membership_type_id, membership_start, membership_end, notes)
VALUES (?, ?, ?, ?, ?, ?, ?)`
