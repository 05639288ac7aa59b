// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

func levelPtr(l Level) *Level { return &l }

func boolPtr(b bool) *bool { return &b }

func newCallerSettings(file, line, funC bool) callerSettings {
	return callerSettings{
		file: boolPtr(file),
		line: boolPtr(line),
		funC: boolPtr(funC),
	}
}
