package model

import "github.com/sirupsen/logrus"

// Config holds the parameters for opening a document store.
type Config struct {
	// Path is the SQLite database file. Missing parent directories are
	// created on open.
	Path string `json:"path" yaml:"path"`

	// Logger receives store diagnostics. Nil selects a default logger.
	Logger *logrus.Logger `json:"-" yaml:"-"`
}

// Validate checks that the Config can open a store. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Path == "" {
		return ErrMissingPath
	}
	return nil
}
