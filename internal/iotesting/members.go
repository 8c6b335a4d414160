// Package iotesting provides shared test utilities: a SQLite members
// database, CSV fixtures and the PostgreSQL test location.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fitengage/fitimport/pkg/member"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// MembersDDL creates a members table like the one of the gym desktop
// application. Names are unique so that repeated members are rejected.
const MembersDDL = `CREATE TABLE members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	email TEXT,
	phone TEXT,
	address TEXT,
	membership_type_id INTEGER,
	membership_start TEXT,
	membership_end TEXT,
	notes TEXT
)`

// PostgresURLEnv names the variable with a PostgreSQL URL for
// integration tests. The database must be dedicated to tests, its
// members table is dropped and recreated.
const PostgresURLEnv = "FITIMPORT_TEST_POSTGRES_URL"

// NewMembersDB creates a SQLite file with an empty members table and
// returns its path.
func NewMembersDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "members.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}
	defer db.Close()

	if _, err = db.Exec(MembersDDL); err != nil {
		t.Fatalf("Failed to create members table: %v", err)
	}
	return path
}

// ReadMembers returns all member rows of a SQLite file in insert order.
func ReadMembers(t *testing.T, path string) []member.Member {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT name, email, phone, membership_type_id,
			membership_start, membership_end, notes
		FROM members ORDER BY id`)
	if err != nil {
		t.Fatalf("Failed to query members: %v", err)
	}
	defer rows.Close()

	var res []member.Member
	for rows.Next() {
		var m member.Member
		var typeID sql.NullInt64
		err = rows.Scan(&m.Name, &m.Email, &m.Phone, &typeID,
			&m.MembershipStart, &m.MembershipEnd, &m.Notes)
		if err != nil {
			t.Fatalf("Failed to scan member: %v", err)
		}
		if typeID.Valid {
			id := typeID.Int64
			m.MembershipTypeID = &id
		}
		res = append(res, m)
	}
	if err = rows.Err(); err != nil {
		t.Fatalf("Failed to read members: %v", err)
	}
	return res
}

// WriteCSV writes a member export with the standard header followed by
// rows and returns its path. Every row must have len(member.Columns)
// fields.
func WriteCSV(t *testing.T, rows ...[]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "members.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create CSV: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := append([][]string{member.Columns}, rows...)
	if err = w.WriteAll(records); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}
	return path
}

// PostgresURL returns the PostgreSQL test URL or skips the test.
func PostgresURL(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	res := os.Getenv(PostgresURLEnv)
	if res == "" {
		t.Skipf("Skipping PostgreSQL test, %s is not set", PostgresURLEnv)
	}
	return res
}
