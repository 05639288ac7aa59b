// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

import "math"

// Slot is the logical time unit in which blocks are authored.
// Slots are monotonic along a chain but may have gaps.
type Slot uint32

// MaxSlot is the largest representable slot.
const MaxSlot Slot = math.MaxUint32

// CheckedAdd returns s+delta, and false if the sum overflows.
func (s Slot) CheckedAdd(delta uint32) (Slot, bool) {
	if uint64(s)+uint64(delta) > uint64(MaxSlot) {
		return 0, false
	}
	return s + Slot(delta), true
}
