// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import "errors"

// ErrNoEligibleKey is returned when none of the local keys may author.
var ErrNoEligibleKey = errors.New("no local key is eligible")
