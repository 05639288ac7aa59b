// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

// AuthorCheckResult details why an author is or is not eligible.
// It is meant for diagnostics only: eligibility itself is the boolean
// returned by CanAuthor.
type AuthorCheckResult uint8

const (
	// FailsPreliminaryChecks means the author does not even pass the preliminary checks.
	FailsPreliminaryChecks AuthorCheckResult = iota
	// FailsFullChecks means the author passes the preliminary checks, but not the full checks.
	FailsFullChecks
	// Eligible means the author is eligible in the slot.
	Eligible
)

func (r AuthorCheckResult) String() string {
	switch r {
	case FailsPreliminaryChecks:
		return "fails preliminary checks"
	case FailsFullChecks:
		return "fails full checks"
	case Eligible:
		return "eligible"
	default:
		return "unknown"
	}
}

// IsEligible returns true if the result is Eligible.
func (r AuthorCheckResult) IsEligible() bool {
	return r == Eligible
}

// CheckAuthor evaluates the preliminary filter, then the full filter, and
// reports at which stage the author was rejected. The author is Eligible
// only if both filters accept it.
func CheckAuthor(preliminary, full CanAuthor, author NimbusID, slot Slot) AuthorCheckResult {
	if !preliminary.CanAuthor(author, slot) {
		return FailsPreliminaryChecks
	}

	if !full.CanAuthor(author, slot) {
		return FailsFullChecks
	}

	return Eligible
}
