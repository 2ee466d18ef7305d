// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides package scoped loggers backed by go-ethereum's slog logger.
// Loggers created with WithContext follow later calls to SetHandler.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	ethlog "github.com/ethereum/go-ethereum/log"
)

// Logger is the logging interface used across the module.
type Logger = ethlog.Logger

// DefaultVerbosity is the legacy verbosity level for info.
const DefaultVerbosity = 3

var (
	current atomic.Pointer[slog.Handler]
	root    Logger
)

func init() {
	var h slog.Handler = slog.DiscardHandler
	current.Store(&h)
	root = ethlog.NewLogger(&swapHandler{})
}

// Root returns the root logger.
func Root() Logger {
	return root
}

// WithContext returns a logger carrying the given key/value pairs.
func WithContext(ctx ...any) Logger {
	return root.With(ctx...)
}

// SetHandler replaces the handler all loggers write to.
func SetHandler(h slog.Handler) {
	current.Store(&h)
}

// Handler returns the handler currently in use.
func Handler() slog.Handler {
	return *current.Load()
}

// NewHandler builds the handler used by command line tools. Verbosity uses the
// legacy scale where 0 is crit and 5 is trace.
func NewHandler(w io.Writer, verbosity int, json bool, color bool) slog.Handler {
	level := ethlog.FromLegacyLevel(verbosity)
	if json {
		return ethlog.JSONHandlerWithLevel(w, level)
	}
	return ethlog.NewTerminalHandlerWithLevel(w, level, color)
}

// swapHandler delegates to the handler stored in current, so that loggers
// derived before a SetHandler call pick up the new handler.
type swapHandler struct {
	attrs []slog.Attr
}

func (h *swapHandler) target() slog.Handler {
	t := *current.Load()
	if len(h.attrs) > 0 {
		return t.WithAttrs(h.attrs)
	}
	return t
}

func (h *swapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return (*current.Load()).Enabled(ctx, level)
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &swapHandler{
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *swapHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}
