// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	// parent is nil for a root logger.
	parent *Logger
	// settings holds the settings set on this logger only. Unset fields
	// are read from the parent chain each time a line is logged.
	settings settings
	mutex    *sync.Mutex // pointer shared with child loggers
}

// New creates a new root logger.
// It can only be called once per writer.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New(options) method,
// to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	return &Logger{
		settings: newSettings(options),
		mutex:    new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// The child follows the settings of its parent, including later patches,
// for every setting not given in the options. Context key values of the
// parent come first.
func (l *Logger) New(options ...Option) *Logger {
	return &Logger{
		parent:   l,
		settings: newSettings(options),
		mutex:    l.mutex,
	}
}

// Patch patches the existing settings with any option given.
// Child loggers pick up the patched settings they do not set themselves.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.settings.overrideWith(newSettings(options))
}

// level returns the level in effect. The mutex must be held.
func (l *Logger) level() Level {
	for logger := l; logger != nil; logger = logger.parent {
		if logger.settings.level != nil {
			return *logger.settings.level
		}
	}
	return defaultLevel
}

// resolved returns the settings in effect, merged from the parent chain
// and completed with the defaults. The mutex must be held.
func (l *Logger) resolved() (s settings) {
	s = l.settings
	for parent := l.parent; parent != nil; parent = parent.parent {
		s.mergeWith(parent.settings)
	}
	s.setDefaults()
	return s
}
