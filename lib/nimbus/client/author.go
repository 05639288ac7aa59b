// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package client holds the node side of nimbus: claiming slots with the
// local keys, sealing authored blocks and importing sealed blocks.
package client

import (
	"fmt"

	"github.com/TarekkMA/nimbus/internal/log"
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/keystore"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/beacon"
	"github.com/TarekkMA/nimbus/lib/nimbus/digest"
	"github.com/TarekkMA/nimbus/lib/nimbus/runtime"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "nimbus/client"))

// APIProvider resolves the eligibility query at a block.
type APIProvider interface {
	AuthorFilterAPI(at common.Hash) (runtime.AuthorFilterAPI, error)
}

// FirstEligibleKey returns the first pair the pre-check at the block at
// accepts for the slot.
func FirstEligibleKey(pairs []*nimbus.NimbusPair, provider APIProvider,
	at common.Hash, slot nimbus.Slot) (*nimbus.NimbusPair, error) {
	api, err := provider.AuthorFilterAPI(at)
	if err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		if api.CanAuthor(pair.Public(), slot) {
			return pair, nil
		}
	}

	return nil, fmt.Errorf("%w: %d keys at slot %d on block %s",
		ErrNoEligibleKey, len(pairs), slot, at)
}

// Author authors blocks with the keys of the local nimbus keystore.
type Author struct {
	keystore keystore.Keystore
	provider APIProvider
	beacon   beacon.Builder
}

// NewAuthor creates an author. A nil beacon builder defaults to the
// relay chain beacon.
func NewAuthor(ks keystore.Keystore, provider APIProvider, beaconBuilder beacon.Builder) *Author {
	if beaconBuilder == nil {
		beaconBuilder = beacon.RelayChainBuilder
	}

	return &Author{
		keystore: ks,
		provider: provider,
		beacon:   beaconBuilder,
	}
}

// Claim returns the first local key eligible to author on top of the
// parent block, in the slot the beacon derives from the block context.
func (a *Author) Claim(parent common.Hash, ctx beacon.BlockContext) (*nimbus.NimbusPair, nimbus.Slot, error) {
	pairs, err := keystore.NimbusPairs(a.keystore)
	if err != nil {
		return nil, 0, fmt.Errorf("reading nimbus keys: %w", err)
	}

	slotBeacon, err := a.beacon(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("deriving slot: %w", err)
	}

	slot := slotBeacon.Slot()
	pair, err := FirstEligibleKey(pairs, a.provider, parent, slot)
	if err != nil {
		return nil, slot, err
	}

	logger.Debugf("claimed slot %d on block %s with key %s", slot, parent.Short(), pair.Public())
	return pair, slot, nil
}

// Propose claims the slot for the unsealed header, appends the nimbus
// pre-runtime digest naming the claiming key and seals the header.
func (a *Author) Propose(header *digest.Header, ctx beacon.BlockContext) (*digest.Header, error) {
	pair, _, err := a.Claim(header.ParentHash, ctx)
	if err != nil {
		return nil, err
	}

	withAuthor := header.Copy()
	withAuthor.Digest = append(withAuthor.Digest, digest.NewNimbusPreDigest(pair.Public()))

	sealed, err := digest.Seal(withAuthor, pair)
	if err != nil {
		return nil, fmt.Errorf("sealing block: %w", err)
	}

	logger.Infof("proposed block %s authored by %s", sealed, pair.Public())
	return sealed, nil
}
