package db_test

import (
	"strings"
	"testing"

	"github.com/fitengage/fitimport/pkg/db"
	"github.com/fitengage/fitimport/pkg/member"
	"github.com/stretchr/testify/assert"
)

// TestInsertSQL verifies that the insert statement has a placeholder
// for every value of a member, in column order.
func TestInsertSQL(t *testing.T) {
	vals := member.Member{}.Values()
	assert.Equal(t, len(vals), strings.Count(db.InsertSQL, "?"))

	cols := []string{
		"name", "email", "phone", "membership_type_id",
		"membership_start", "membership_end", "notes",
	}
	pos := -1
	for _, c := range cols {
		i := strings.Index(db.InsertSQL, c)
		assert.Greater(t, i, pos, "column %s is out of order", c)
		pos = i
	}
}
