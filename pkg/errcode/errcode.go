package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// CSV errors
	CSVHeaderError
	CSVMissingColumnsError
	CSVRowError

	// Store errors
	StoreOpenError
	StoreNotOpenError
	StoreBeginError
	StoreInsertError
	StoreConstraintError
	StoreCommitError

	// Import errors
	ImportReportError
)
