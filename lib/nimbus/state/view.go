// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

// AuthorityView is the read only access eligibility filters have to the
// chain state. Slices returned are copies.
type AuthorityView interface {
	// Authorities returns the active authority set in order.
	Authorities() []nimbus.NimbusID
	// NumAuthorities returns the size of the active authority set.
	NumAuthorities() int
	// AuthorityIndex returns the first index of the author in the set.
	AuthorityIndex(author nimbus.NimbusID) (index int, ok bool)
	EligibleCount() uint32
	Randomness() Randomness
	RelayParentNumber() uint32
}

type snapshotView struct {
	authorities       []nimbus.NimbusID
	index             map[nimbus.NimbusID]int
	eligibleCount     uint32
	randomness        Randomness
	relayParentNumber uint32
}

func newSnapshotView(s *Snapshot) *snapshotView {
	authorities := make([]nimbus.NimbusID, len(s.Authorities))
	copy(authorities, s.Authorities)

	index := make(map[nimbus.NimbusID]int, len(authorities))
	for i, author := range authorities {
		if _, has := index[author]; has {
			continue
		}
		index[author] = i
	}

	return &snapshotView{
		authorities:       authorities,
		index:             index,
		eligibleCount:     s.EligibleCount,
		randomness:        s.Randomness,
		relayParentNumber: s.RelayParentNumber,
	}
}

func (v *snapshotView) Authorities() []nimbus.NimbusID {
	authorities := make([]nimbus.NimbusID, len(v.authorities))
	copy(authorities, v.authorities)
	return authorities
}

func (v *snapshotView) NumAuthorities() int { return len(v.authorities) }

func (v *snapshotView) AuthorityIndex(author nimbus.NimbusID) (index int, ok bool) {
	index, ok = v.index[author]
	return index, ok
}

func (v *snapshotView) EligibleCount() uint32 { return v.eligibleCount }

func (v *snapshotView) Randomness() Randomness { return v.randomness }

func (v *snapshotView) RelayParentNumber() uint32 { return v.relayParentNumber }
