// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

const defaultLevel = Info

type settings struct {
	writer  io.Writer
	level   *Level
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

func (s *settings) addContext(key string, values ...string) {
	for i := range s.context {
		if s.context[i].key == key {
			s.context[i].values = append(s.context[i].values, values...)
			return
		}
	}
	newValues := make([]string, len(values))
	copy(newValues, values)
	s.context = append(s.context, contextKeyValues{key: key, values: newValues})
}

// mergeWith sets values for each field not set in the
// settings with the field values of the parent settings.
// The parent context goes first, followed by the context
// of these settings.
func (s *settings) mergeWith(parent settings) {
	if s.writer == nil {
		s.writer = parent.writer
	}

	if s.level == nil && parent.level != nil {
		value := *parent.level
		s.level = &value
	}

	s.caller.mergeWith(parent.caller)

	own := s.context
	s.context = nil
	for _, kv := range parent.context {
		s.addContext(kv.key, kv.values...)
	}
	for _, kv := range own {
		s.addContext(kv.key, kv.values...)
	}
}

// overrideWith sets each field set in the other settings,
// and appends its context key values.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		s.addContext(kv.key, kv.values...)
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := defaultLevel
		s.level = &value
	}

	s.caller.setDefaults()
}
