package parse

import "log/slog"

type parseOpts struct {
	filename  string
	copyNames bool
	logger    *slog.Logger
}

type ParseOption func(*parseOpts)

// WithFilename sets the name reported in a ParseError.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// CopyNames makes the store own a copy of every name it creates
// instead of referencing the parsed buffer, so the buffer may be
// reused or modified afterwards.
func CopyNames(v bool) ParseOption {
	return func(o *parseOpts) { o.copyNames = v }
}

// WithLogger sets the logger receiving debug records. If unset,
// slog.Default() is used.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}
