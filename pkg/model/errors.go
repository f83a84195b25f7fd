package model

import "errors"

// Path errors.
var (
	// ErrMalformedPath reports a path string with an empty segment, such
	// as "/a//b" or "/a/".
	ErrMalformedPath = errors.New("malformed path")
)

// Document tree errors. ErrMissingParent and ErrDuplicatePath indicate a
// corrupt row set when raised during load; both are recoverable.
var (
	ErrMissingParent = errors.New("parent node not found")
	ErrDuplicatePath = errors.New("duplicate path in row set")
	ErrPathCollision = errors.New("path already exists")
	ErrNotFound      = errors.New("node not found")
	ErrNotChild      = errors.New("path is not a direct child of the node")
	ErrRootNode      = errors.New("operation not permitted on the root node")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrMissingPath = errors.New("config: missing database path")
)
