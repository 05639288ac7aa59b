// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

// RandomnessLength is the length of the per block randomness.
const RandomnessLength = 32

// Randomness is the randomness the eligibility filters are seeded with.
type Randomness [RandomnessLength]byte

// Snapshot is the chain state after a block, restricted to what authorship
// eligibility reads.
type Snapshot struct {
	Hash              common.Hash
	Number            uint32
	RelayParentNumber uint32
	Authorities       []nimbus.NimbusID
	// EligibleCount is the number of authorities eligible in each slot.
	// Zero means the whole set.
	EligibleCount uint32
	Randomness    Randomness
}

// Copy returns a deep copy of the snapshot.
func (s *Snapshot) Copy() *Snapshot {
	cp := *s
	if s.Authorities != nil {
		cp.Authorities = make([]nimbus.NimbusID, len(s.Authorities))
		copy(cp.Authorities, s.Authorities)
	}
	return &cp
}

// Child returns the snapshot of the block built on top of s.
// The authority data is carried forward unchanged.
func (s *Snapshot) Child(hash common.Hash, number, relayParentNumber uint32) *Snapshot {
	child := s.Copy()
	child.Hash = hash
	child.Number = number
	child.RelayParentNumber = relayParentNumber
	return child
}

// View returns a read only view over a copy of the snapshot.
func (s *Snapshot) View() AuthorityView {
	return newSnapshotView(s)
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("snapshot #%d (%s) relay parent #%d with %d authorities",
		s.Number, s.Hash.Short(), s.RelayParentNumber, len(s.Authorities))
}
