// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package filter

import (
	"encoding/binary"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// EligibleRatio builds the filter accepting a pseudo random subset of
// view.EligibleCount() authorities in each slot. The subset is drawn
// without replacement from the active set, each draw seeded with
// blake2b(randomness || slot || draw). A count of zero, or of at least
// the set size, makes the whole set eligible.
func EligibleRatio(view state.AuthorityView) nimbus.CanAuthor {
	return nimbus.CanAuthorFunc(func(author nimbus.NimbusID, slot nimbus.Slot) bool {
		index, ok := view.AuthorityIndex(author)
		if !ok {
			return false
		}

		n := view.NumAuthorities()
		count := int(view.EligibleCount())
		if count == 0 || count >= n {
			return true
		}

		for _, eligible := range eligibleIndexes(n, count, view.Randomness(), slot) {
			if eligible == index {
				return true
			}
		}
		return false
	})
}

// eligibleIndexes returns count indexes drawn from [0, n) for the slot,
// using a partial Fisher-Yates shuffle. It requires 0 < count <= n.
func eligibleIndexes(n, count int, randomness state.Randomness, slot nimbus.Slot) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	subject := make([]byte, state.RandomnessLength+8)
	copy(subject, randomness[:])
	binary.LittleEndian.PutUint32(subject[state.RandomnessLength:], uint32(slot))

	for draw := 0; draw < count; draw++ {
		binary.LittleEndian.PutUint32(subject[state.RandomnessLength+4:], uint32(draw))
		seed := common.MustBlake2bHash(subject)

		remaining := uint32(n - draw)
		pick := draw + int(binary.LittleEndian.Uint32(seed[:4])%remaining)
		indexes[draw], indexes[pick] = indexes[pick], indexes[draw]
	}

	return indexes[:count]
}
