// Package logx builds the application-wide structured logger.
package logx

import (
	"fmt"

	"go.uber.org/zap"
)

// New creates the logger. Debug mode switches to the human-readable
// development encoder with debug-level output; otherwise production JSON.
func New(debug bool) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}

// MustNew is New for startup paths where a missing logger is fatal.
func MustNew(debug bool) *zap.Logger {
	logger, err := New(debug)
	if err != nil {
		panic(err)
	}
	return logger
}
