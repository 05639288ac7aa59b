// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

// CanAuthor determines whether an author is eligible to author in a slot.
// This is the primary interface a nimbus filter implements.
//
// The caller names an author and the implementation replies whether that
// author is eligible, which also works when the active set is unbounded.
// Implementations read the chain state they were built against, must not
// mutate it, must not panic for any author or slot and must return the same
// answer for the same inputs against the same state. Authors absent from the
// active set and slots the implementation cannot represent yield false.
type CanAuthor interface {
	CanAuthor(author NimbusID, slot Slot) bool
}

// CanAuthorFunc adapts a function to the CanAuthor interface.
type CanAuthorFunc func(author NimbusID, slot Slot) bool

// CanAuthor calls f(author, slot).
func (f CanAuthorFunc) CanAuthor(author NimbusID, slot Slot) bool {
	return f(author, slot)
}

// AnyoneCanAuthor is the filter where anyone can author in any slot.
// It matches the relay chain consensus of cumulus.
type AnyoneCanAuthor struct{}

// CanAuthor always returns true.
func (AnyoneCanAuthor) CanAuthor(NimbusID, Slot) bool { return true }

// SlotBeacon determines the current slot from the chain context.
type SlotBeacon interface {
	Slot() Slot
}

// SlotBeaconFunc adapts a function to the SlotBeacon interface.
type SlotBeaconFunc func() Slot

// Slot calls f().
func (f SlotBeaconFunc) Slot() Slot { return f() }

// EventHandler is notified once the author of a block is known and eligible.
// Handlers have no error channel: they must not panic for recoverable
// conditions since a panic on one node only would break consensus.
type EventHandler interface {
	NoteAuthor(author NimbusID)
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(author NimbusID)

// NoteAuthor calls f(author).
func (f EventHandlerFunc) NoteAuthor(author NimbusID) { f(author) }

// NoopEventHandler discards every notification.
type NoopEventHandler struct{}

// NoteAuthor does nothing.
func (NoopEventHandler) NoteAuthor(NimbusID) {}

// EventHandlers notifies each of its handlers in order.
type EventHandlers []EventHandler

// NoteAuthor notifies every handler of the author.
func (handlers EventHandlers) NoteAuthor(author NimbusID) {
	for _, handler := range handlers {
		handler.NoteAuthor(author)
	}
}

var (
	_ CanAuthor    = AnyoneCanAuthor{}
	_ CanAuthor    = CanAuthorFunc(nil)
	_ SlotBeacon   = SlotBeaconFunc(nil)
	_ EventHandler = NoopEventHandler{}
	_ EventHandler = EventHandlerFunc(nil)
	_ EventHandler = EventHandlers(nil)
)
