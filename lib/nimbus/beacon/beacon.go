// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package beacon provides the slot beacons nimbus deployments use.
package beacon

import (
	"errors"
	"fmt"
	"time"

	"github.com/TarekkMA/nimbus/lib/nimbus"
)

var (
	// ErrSlotOverflow is returned when the block context maps to a slot
	// past nimbus.MaxSlot.
	ErrSlotOverflow = errors.New("slot overflows")
	// ErrInvalidSlotDuration is returned for slot durations under one millisecond.
	ErrInvalidSlotDuration = errors.New("slot duration is under one millisecond")
)

// BlockContext is the context a block is executed in, as carried by its
// inherent data.
type BlockContext struct {
	RelayParentNumber uint32
	// Timestamp is the block timestamp in milliseconds since the unix epoch.
	Timestamp uint64
}

// Builder builds the slot beacon of a block from its context.
// It returns an error when the context cannot be mapped to a slot, in which
// case no author is eligible for the block.
type Builder func(ctx BlockContext) (nimbus.SlotBeacon, error)

// RelayChain is the beacon reading the slot from the relay parent number.
type RelayChain struct {
	RelayParentNumber uint32
}

// Slot returns the relay parent number.
func (r RelayChain) Slot() nimbus.Slot {
	return nimbus.Slot(r.RelayParentNumber)
}

// RelayChainBuilder builds RelayChain beacons.
// Every relay parent number is a valid slot.
func RelayChainBuilder(ctx BlockContext) (nimbus.SlotBeacon, error) {
	return RelayChain{RelayParentNumber: ctx.RelayParentNumber}, nil
}

// Timestamp is the beacon dividing the block timestamp by the slot duration.
type Timestamp struct {
	slot nimbus.Slot
}

// NewTimestamp returns the beacon of the timestamp in milliseconds.
// Timestamps past the last representable slot are refused with
// ErrSlotOverflow rather than clamped or wrapped.
func NewTimestamp(millis uint64, slotDuration time.Duration) (beacon Timestamp, err error) {
	durationMillis := uint64(slotDuration / time.Millisecond)
	if durationMillis == 0 {
		return beacon, fmt.Errorf("%w: %s", ErrInvalidSlotDuration, slotDuration)
	}

	slot := millis / durationMillis
	if slot > uint64(nimbus.MaxSlot) {
		return beacon, fmt.Errorf("%w: timestamp %dms with %s slots gives slot %d",
			ErrSlotOverflow, millis, slotDuration, slot)
	}
	return Timestamp{slot: nimbus.Slot(slot)}, nil
}

// Slot returns the timestamp divided by the slot duration.
func (t Timestamp) Slot() nimbus.Slot {
	return t.slot
}

// TimestampBuilder returns a builder of Timestamp beacons
// with the given slot duration.
func TimestampBuilder(slotDuration time.Duration) Builder {
	return func(ctx BlockContext) (nimbus.SlotBeacon, error) {
		beacon, err := NewTimestamp(ctx.Timestamp, slotDuration)
		if err != nil {
			return nil, err
		}
		return beacon, nil
	}
}

// Fixed is the beacon always returning the same slot.
type Fixed nimbus.Slot

// Slot returns the fixed slot.
func (f Fixed) Slot() nimbus.Slot {
	return nimbus.Slot(f)
}

// FixedBuilder returns a builder ignoring the block context.
func FixedBuilder(slot nimbus.Slot) Builder {
	return func(BlockContext) (nimbus.SlotBeacon, error) {
		return Fixed(slot), nil
	}
}

var (
	_ nimbus.SlotBeacon = RelayChain{}
	_ nimbus.SlotBeacon = Timestamp{}
	_ nimbus.SlotBeacon = Fixed(0)
	_ Builder           = RelayChainBuilder
)
