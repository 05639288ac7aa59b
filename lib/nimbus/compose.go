// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

// All returns a filter accepting an author in a slot only if every given
// filter accepts it. Filters are evaluated in order and evaluation stops at
// the first rejection, so cheaper filters should come first.
// Nil filters are skipped. With no filters, All accepts everyone.
func All(filters ...CanAuthor) CanAuthor {
	return allOf(copyFilters(filters))
}

// Any returns a filter accepting an author in a slot if at least one of the
// given filters accepts it. Filters are evaluated in order and evaluation
// stops at the first acceptance. Nil filters are skipped.
// With no filters, Any rejects everyone.
func Any(filters ...CanAuthor) CanAuthor {
	return anyOf(copyFilters(filters))
}

// Not returns a filter accepting exactly what the given filter rejects.
// A nil filter stands for AnyoneCanAuthor, so Not(nil) rejects everyone.
func Not(filter CanAuthor) CanAuthor {
	if filter == nil {
		filter = AnyoneCanAuthor{}
	}
	return not{filter: filter}
}

func copyFilters(filters []CanAuthor) []CanAuthor {
	copied := make([]CanAuthor, 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			copied = append(copied, filter)
		}
	}
	return copied
}

type allOf []CanAuthor

func (filters allOf) CanAuthor(author NimbusID, slot Slot) bool {
	for _, filter := range filters {
		if !filter.CanAuthor(author, slot) {
			return false
		}
	}
	return true
}

type anyOf []CanAuthor

func (filters anyOf) CanAuthor(author NimbusID, slot Slot) bool {
	for _, filter := range filters {
		if filter.CanAuthor(author, slot) {
			return true
		}
	}
	return false
}

type not struct {
	filter CanAuthor
}

func (n not) CanAuthor(author NimbusID, slot Slot) bool {
	return !n.filter.CanAuthor(author, slot)
}
