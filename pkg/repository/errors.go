// Package repository holds errors shared by all repository backends.
package repository

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound indicates the requested record does not exist in any
// backend. Callers match it with errors.Is regardless of backend.
var ErrNotFound = goerr.New("record not found")
