// Package fitimport imports gym members from CSV exports into the
// members table.
package fitimport

import (
	"context"

	"github.com/fitengage/fitimport/pkg/member"
)

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags.
	Build = "n/a"
)

// Importer loads one CSV export into the database.
type Importer interface {
	// Import processes every CSV row, skips rows rejected by database
	// constraints and commits the rest at once. The returned Summary
	// lists inserted and skipped rows.
	Import(ctx context.Context) (*member.Summary, error)
}
