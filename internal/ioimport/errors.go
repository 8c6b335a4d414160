package ioimport

import (
	"errors"
	"fmt"

	"github.com/fitengage/fitimport/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when import
// is attempted without an open store.
func NotConnectedError() error {
	msg := "Import attempted without database connection"

	return &gn.Error{
		Code: errcode.StoreNotOpenError,
		Msg:  msg,
		Err:  errors.New("not connected to database"),
	}
}

// ReportError creates an error for when the summary cannot be
// encoded.
func ReportError(path string, err error) error {
	msg := "Cannot create import report <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImportReportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode report: %w", err),
	}
}
