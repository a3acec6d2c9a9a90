// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log is a thin layer over the go-ethereum logger. Package level
// loggers are created with WithContext and resolve the root handler lazily, so
// they can be declared as vars before Init runs.
package log

import (
	"io"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// legacy verbosity levels, as accepted by the --verbosity flag.
const (
	LegacyLevelCrit = iota
	LegacyLevelError
	LegacyLevelWarn
	LegacyLevelInfo
	LegacyLevelDebug
	LegacyLevelTrace
)

// Logger writes leveled messages followed by key/value pairs.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

// Init installs a terminal handler on the root logger.
func Init(verbosity int, w io.Writer, useColor bool) {
	handler := gethlog.NewTerminalHandlerWithLevel(w, gethlog.FromLegacyLevel(verbosity), useColor)
	gethlog.SetDefault(gethlog.NewLogger(handler))
}

// Root returns the root logger.
func Root() Logger {
	return gethlog.Root()
}

// WithContext returns a logger that always prepends ctx to the key/value pairs.
func WithContext(ctx ...any) Logger {
	return &contextLogger{ctx: ctx}
}

type contextLogger struct {
	ctx []any
}

func (l *contextLogger) root() gethlog.Logger {
	return gethlog.Root().With(l.ctx...)
}

func (l *contextLogger) Trace(msg string, ctx ...any) { l.root().Trace(msg, ctx...) }
func (l *contextLogger) Debug(msg string, ctx ...any) { l.root().Debug(msg, ctx...) }
func (l *contextLogger) Info(msg string, ctx ...any)  { l.root().Info(msg, ctx...) }
func (l *contextLogger) Warn(msg string, ctx ...any)  { l.root().Warn(msg, ctx...) }
func (l *contextLogger) Error(msg string, ctx ...any) { l.root().Error(msg, ctx...) }
