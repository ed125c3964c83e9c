// Package logtest provides a no-op Logger for tests.
package logtest

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/logging"
)

type nopLogger struct{}

// NewNop returns a Logger that discards everything.
func NewNop() logging.Logger { return nopLogger{} }

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }
