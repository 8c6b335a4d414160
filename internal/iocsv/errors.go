package iocsv

import (
	"fmt"
	"strings"

	"github.com/fitengage/fitimport/pkg/errcode"
	"github.com/fitengage/fitimport/pkg/member"
	"github.com/gnames/gn"
)

// HeaderError is returned when the header row cannot be read.
func HeaderError(err error) error {
	msg := `Cannot read CSV header

<em>Required columns:</em>
  %s`
	vars := []any{strings.Join(member.Columns, ", ")}
	return &gn.Error{
		Code: errcode.CSVHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read CSV header: %w", err),
	}
}

// MissingColumnsError is returned when required columns are absent.
func MissingColumnsError(missing []string) error {
	msg := `CSV file misses required columns

<em>Missing:</em> %s

<em>How to fix:</em>
  Export members with all of these columns:
  %s`
	vars := []any{
		strings.Join(missing, ", "),
		strings.Join(member.Columns, ", "),
	}
	return &gn.Error{
		Code: errcode.CSVMissingColumnsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing CSV columns: %s", strings.Join(missing, ", ")),
	}
}

// RowError is returned when a data row cannot be parsed.
func RowError(line int, err error) error {
	msg := "Cannot parse CSV row at line <em>%d</em>"
	vars := []any{line}
	return &gn.Error{
		Code: errcode.CSVRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse CSV line %d: %w", line, err),
	}
}
