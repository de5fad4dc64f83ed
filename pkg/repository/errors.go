package repository

import "github.com/m-mizutani/goerr/v2"

// Errors shared by every ScanJobRepository implementation; callers match them with errors.Is.
var (
	ErrNotFound     = goerr.New("scan job not found")
	ErrInvalidInput = goerr.New("invalid scan job input")
)
