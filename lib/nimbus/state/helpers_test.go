// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

func newTestSnapshot(hashByte byte) *Snapshot {
	return &Snapshot{
		Hash:              common.Hash{hashByte},
		Number:            uint32(hashByte),
		RelayParentNumber: 100 + uint32(hashByte),
		Authorities:       []nimbus.NimbusID{{1}, {2}, {3}},
		EligibleCount:     2,
		Randomness:        Randomness{9},
	}
}
