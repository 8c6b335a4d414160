package iostore

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fitengage/fitimport/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError is returned when the database cannot be opened.
func OpenError(location string, err error) error {
	msg := `Cannot open database <em>%s</em>

<em>How to fix:</em>
  - give a path to an existing SQLite file with a members table
  - or a postgres:// URL of a database with a members table`
	vars := []any{location}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), location, err),
	}
}

// NotOpenError is returned when a store is used after Commit or Close.
func NotOpenError() error {
	msg := "Database transaction is not open"
	return &gn.Error{
		Code: errcode.StoreNotOpenError,
		Msg:  msg,
		Err:  errors.New("store has no open transaction"),
	}
}

// BeginError is returned when the import transaction cannot start.
func BeginError(err error) error {
	msg := "Cannot start database transaction"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreBeginError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot begin: %w", fn.Name(), err),
	}
}

// InsertError is returned for insert failures other than constraint
// violations. They stop the import.
func InsertError(name string, err error) error {
	msg := `Cannot insert member <em>%s</em>

<em>Possible causes:</em>
  - the database has no members table
  - the members table has different columns`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot insert %q: %w",
			fn.Name(), name, err),
	}
}

// ConstraintError is returned when an insert violates an integrity
// constraint. Err keeps the driver error as is, it is shown to users
// when the row is skipped.
func ConstraintError(err error) error {
	msg := "Member violates a database constraint: %s"
	vars := []any{err.Error()}
	return &gn.Error{
		Code: errcode.StoreConstraintError,
		Msg:  msg,
		Vars: vars,
		Err:  err,
	}
}

// CommitError is returned when the final commit fails.
func CommitError(err error) error {
	msg := "Cannot commit imported members"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreCommitError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot commit: %w", fn.Name(), err),
	}
}

// IsConstraint reports whether err is a ConstraintError.
func IsConstraint(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return gnErr.Code == errcode.StoreConstraintError
}

// Cause returns the error wrapped by a *gn.Error, or err itself.
func Cause(err error) error {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		return gnErr.Err
	}
	return err
}
