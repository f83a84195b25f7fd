// Package model defines interned document paths, the document tree built
// on them, and the DocumentStore interface for loading and persisting
// trees.
//
// Path handles are canonical: the package keeps one process-wide interning
// table, so any two handles for the same path compare equal with == and
// are usable as map keys. Documents and nodes are single-goroutine values;
// only the interning layer is safe for concurrent use.
package model
