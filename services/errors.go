package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// the record changed since the caller last read it
	ErrStaleWrite = errors.New("stale write, reload and retry")
	// advancing past the terminal stage; the workflow is finished
	ErrWorkflowComplete = errors.New("workflow complete")
)

// MissingFieldsError names every field that blocks a stage advance. The
// check is all-or-nothing; no partial advance happens.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// FieldErrors carries per-field validation messages. It is raised before any
// database write.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
