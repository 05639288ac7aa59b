// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var sweptSlots = []Slot{0, 1, 2, 3, 100, 1 << 16, 1 << 31, MaxSlot - 1, MaxSlot}

func Test_AnyoneCanAuthor(t *testing.T) {
	t.Parallel()

	authors := []NimbusID{{}, {1}, {0xff, 31: 0xff}}

	var filter CanAuthor = AnyoneCanAuthor{}
	for _, author := range authors {
		for _, slot := range sweptSlots {
			assert.Truef(t, filter.CanAuthor(author, slot), "author %s slot %d", author, slot)
		}
	}
}

func Test_CanAuthor_deterministic(t *testing.T) {
	t.Parallel()

	// odd slots for authors starting with an odd byte
	filter := CanAuthorFunc(func(author NimbusID, slot Slot) bool {
		return author[0]%2 == byte(slot%2)
	})

	for _, author := range []NimbusID{{0}, {1}, {2}} {
		for _, slot := range sweptSlots {
			first := filter.CanAuthor(author, slot)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, filter.CanAuthor(author, slot))
			}
		}
	}
}

func Test_NoopEventHandler(t *testing.T) {
	t.Parallel()

	var handler EventHandler = NoopEventHandler{}
	assert.NotPanics(t, func() {
		handler.NoteAuthor(NimbusID{})
		handler.NoteAuthor(NimbusID{0xff, 31: 0xff})
	})
}

func Test_EventHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	first := NewMockEventHandler(ctrl)
	second := NewMockEventHandler(ctrl)
	author := NimbusID{7}

	gomock.InOrder(
		first.EXPECT().NoteAuthor(author),
		second.EXPECT().NoteAuthor(author),
	)

	handlers := EventHandlers{first, second}
	handlers.NoteAuthor(author)
}

func Test_EventHandlerFunc(t *testing.T) {
	t.Parallel()

	var noted []NimbusID
	handler := EventHandlerFunc(func(author NimbusID) {
		noted = append(noted, author)
	})

	handler.NoteAuthor(NimbusID{1})
	handler.NoteAuthor(NimbusID{2})

	assert.Equal(t, []NimbusID{{1}, {2}}, noted)
}

func Test_SlotBeaconFunc(t *testing.T) {
	t.Parallel()

	beacon := SlotBeaconFunc(func() Slot { return 42 })
	assert.Equal(t, Slot(42), beacon.Slot())
}
