// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger. Loggers created from the
// global logger, including package level ones created before the patch,
// follow the patched settings they do not set themselves.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}
