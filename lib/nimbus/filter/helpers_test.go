// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package filter

import (
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

var (
	alice   = nimbus.NimbusID{1}
	bob     = nimbus.NimbusID{2}
	charlie = nimbus.NimbusID{3}
	dave    = nimbus.NimbusID{4}
	eve     = nimbus.NimbusID{5}
	mallory = nimbus.NimbusID{0xff}
)

func newTestView(eligibleCount uint32, authorities ...nimbus.NimbusID) state.AuthorityView {
	snapshot := &state.Snapshot{
		Authorities:   authorities,
		EligibleCount: eligibleCount,
		Randomness:    state.Randomness{0xaa, 0xbb},
	}
	return snapshot.View()
}

func sweptSlots() []nimbus.Slot {
	slots := make([]nimbus.Slot, 0, 70)
	for slot := nimbus.Slot(0); slot < 64; slot++ {
		slots = append(slots, slot)
	}
	return append(slots, nimbus.MaxSlot-2, nimbus.MaxSlot-1, nimbus.MaxSlot)
}
