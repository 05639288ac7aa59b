// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s     string
		level Level
		err   error
	}{
		"short trace": {s: "trce", level: Trace},
		"long debug":  {s: "Debug", level: Debug},
		"info":        {s: "INFO", level: Info},
		"warning":     {s: "warning", level: Warn},
		"error":       {s: "eror", level: Error},
		"critical":    {s: "critical", level: Critical},
		"unknown": {
			s:   "verbose",
			err: ErrLevelNotRecognised,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.err)
			assert.Equal(t, testCase.level, level)
		})
	}
}

func Test_Level_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRCE", Trace.String())
	assert.Equal(t, "CRIT", Critical.String())
	assert.Equal(t, "???", Level(99).String())
}
