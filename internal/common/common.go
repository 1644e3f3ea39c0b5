// Package common holds small helpers shared across the module.
package common

import "log/slog"

// Logger returns l, or a logger that drops every record when l is nil.
func Logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
