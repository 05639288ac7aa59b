// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package filter provides reusable nimbus author filters reading the
// authority data of a chain state snapshot.
package filter

import (
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// Builder instantiates a filter against the authority view of a block.
// The same builder is used for the pre-check and the full check so both
// evaluate the same predicate against the same state.
type Builder func(view state.AuthorityView) nimbus.CanAuthor

// Anyone builds the filter letting anyone author.
func Anyone(state.AuthorityView) nimbus.CanAuthor {
	return nimbus.AnyoneCanAuthor{}
}

// AllOf builds the conjunction of the filters built by each builder,
// evaluated in the given order. Nil builders are skipped.
func AllOf(builders ...Builder) Builder {
	kept := make([]Builder, 0, len(builders))
	for _, builder := range builders {
		if builder != nil {
			kept = append(kept, builder)
		}
	}

	return func(view state.AuthorityView) nimbus.CanAuthor {
		filters := make([]nimbus.CanAuthor, len(kept))
		for i, builder := range kept {
			filters[i] = builder(view)
		}
		return nimbus.All(filters...)
	}
}

// ActiveSet builds the filter accepting members of the active authority set.
func ActiveSet(view state.AuthorityView) nimbus.CanAuthor {
	return nimbus.CanAuthorFunc(func(author nimbus.NimbusID, _ nimbus.Slot) bool {
		_, ok := view.AuthorityIndex(author)
		return ok
	})
}

// RoundRobin builds the filter accepting the authority whose index in the
// active set is the slot modulo the set size.
func RoundRobin(view state.AuthorityView) nimbus.CanAuthor {
	return nimbus.CanAuthorFunc(func(author nimbus.NimbusID, slot nimbus.Slot) bool {
		n := view.NumAuthorities()
		if n == 0 {
			return false
		}

		index, ok := view.AuthorityIndex(author)
		if !ok {
			return false
		}

		return uint64(slot)%uint64(n) == uint64(index)
	})
}

// Allowlist returns the builder of a filter accepting the given authors only.
func Allowlist(authors ...nimbus.NimbusID) Builder {
	allowed := make(map[nimbus.NimbusID]struct{}, len(authors))
	for _, author := range authors {
		allowed[author] = struct{}{}
	}

	filter := nimbus.CanAuthorFunc(func(author nimbus.NimbusID, _ nimbus.Slot) bool {
		_, ok := allowed[author]
		return ok
	})

	return func(state.AuthorityView) nimbus.CanAuthor {
		return filter
	}
}

// SlotRange returns the builder of a filter accepting slots in the
// inclusive range [from, to]. An inverted range accepts nothing.
func SlotRange(from, to nimbus.Slot) Builder {
	filter := nimbus.CanAuthorFunc(func(_ nimbus.NimbusID, slot nimbus.Slot) bool {
		return from <= slot && slot <= to
	})

	return func(state.AuthorityView) nimbus.CanAuthor {
		return filter
	}
}

var (
	_ Builder = Anyone
	_ Builder = ActiveSet
	_ Builder = RoundRobin
	_ Builder = EligibleRatio
)
