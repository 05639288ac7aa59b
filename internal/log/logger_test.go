// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options  []Option
		settings settings
	}{
		"no option": {
			settings: settings{
				writer: os.Stdout,
				level:  levelPtr(Info),
				caller: newCallerSettings(false, false, false),
			},
		},
		"all options": {
			options: []Option{
				SetLevel(Trace),
				SetCallerFile(true),
				SetCallerLine(true),
				SetCallerFunc(true),
				SetWriter(io.Discard),
				AddContext("key1", "value1"),
				AddContext("key1", "value2"),
			},
			settings: settings{
				writer: io.Discard,
				level:  levelPtr(Trace),
				caller: newCallerSettings(true, true, true),
				context: []contextKeyValues{
					{key: "key1", values: []string{"value1", "value2"}},
				},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger := New(testCase.options...)

			assert.Nil(t, logger.parent)
			assert.NotNil(t, logger.mutex)
			assert.Equal(t, testCase.settings, logger.resolved())
		})
	}
}

func Test_Logger_New(t *testing.T) {
	t.Parallel()

	parent := New(SetLevel(Debug), SetWriter(io.Discard), AddContext("pkg", "runtime"))
	child := parent.New(AddContext("pkg", "api"), AddContext("at", "0x01"), SetCallerLine(true))

	expectedSettings := settings{
		writer: io.Discard,
		level:  levelPtr(Debug),
		caller: newCallerSettings(false, true, false),
		context: []contextKeyValues{
			{key: "pkg", values: []string{"runtime", "api"}},
			{key: "at", values: []string{"0x01"}},
		},
	}

	assert.Equal(t, expectedSettings, child.resolved())
	assert.Same(t, parent.mutex, child.mutex)
	// parent is left untouched
	assert.Equal(t, []contextKeyValues{{key: "pkg", values: []string{"runtime"}}}, parent.resolved().context)
}

func Test_Logger_Patch(t *testing.T) {
	t.Parallel()

	logger := New(SetLevel(Info), SetWriter(io.Discard))
	logger.Patch(SetLevel(Error), AddContext("pkg", "client"))

	assert.Equal(t, levelPtr(Error), logger.settings.level)
	assert.Equal(t, []contextKeyValues{{key: "pkg", values: []string{"client"}}}, logger.settings.context)
}

func Test_Logger_Patch_children(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	root := New(SetWriter(buffer))
	child := root.New(AddContext("pkg", "state"))
	grandChild := child.New(AddContext("block", "1"))
	pinned := root.New(SetLevel(Error), AddContext("pkg", "client"))

	child.Debug("hidden")
	grandChild.Debug("hidden")

	root.Patch(SetLevel(Debug))

	child.Debug("store")
	grandChild.Debugf("block %d", 1)
	pinned.Warn("hidden")

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\S+ DBUG store\tpkg=state$`, lines[0])
	assert.Regexp(t, `^\S+ DBUG block 1\tpkg=state block=1$`, lines[1])
}

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options []Option
		logFunc func(logger *Logger)
		regex   string
	}{
		"below level": {
			options: []Option{SetLevel(Info)},
			logFunc: func(logger *Logger) { logger.Debug("hidden") },
			regex:   `^$`,
		},
		"plain message": {
			options: []Option{SetLevel(Info)},
			logFunc: func(logger *Logger) { logger.Info("hello") },
			regex:   `^\S+ INFO hello\n$`,
		},
		"formatted with context": {
			options: []Option{SetLevel(Trace), AddContext("pkg", "filter"), AddContext("pkg", "api")},
			logFunc: func(logger *Logger) { logger.Warnf("slot %d", 7) },
			regex:   `^\S+ WARN slot 7\tpkg=filter,api\n$`,
		},
		"with caller": {
			options: []Option{SetCallerFile(true), SetCallerLine(true)},
			logFunc: func(logger *Logger) { logger.Errorf("author %s", "0x00") },
			regex:   `^\S+ EROR logger_test.go:L\d+ author 0x00\n$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			options := append([]Option{SetWriter(buffer)}, testCase.options...)
			logger := New(options...)

			testCase.logFunc(logger)

			require.Regexp(t, regexp.MustCompile(testCase.regex), buffer.String())
		})
	}
}
