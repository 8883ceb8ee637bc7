package disk

import "errors"

// Static error definitions for better error handling.
var (
	// ErrNoFilesSelected indicates that an archive was requested with an empty file selection.
	ErrNoFilesSelected = errors.New("no files selected")
)
