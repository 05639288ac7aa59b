// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"sync"

	"github.com/TarekkMA/nimbus/lib/crypto"
)

// BasicKeystore holds keys of a single type in memory.
// It is safe for concurrent use.
type BasicKeystore struct {
	name Name
	typ  crypto.KeyType

	lock  sync.RWMutex
	keys  map[string]crypto.Keypair // keyed by public key hex
	order []string
}

// NewBasicKeystore creates a new BasicKeystore with the given key type
func NewBasicKeystore(name Name, typ crypto.KeyType) *BasicKeystore {
	return &BasicKeystore{
		name: name,
		typ:  typ,
		keys: make(map[string]crypto.Keypair),
	}
}

// Name returns the keystore's name
func (ks *BasicKeystore) Name() Name {
	return ks.name
}

// Type returns the keystore's key type
func (ks *BasicKeystore) Type() crypto.KeyType {
	return ks.typ
}

// Size returns the number of keys in the keystore
func (ks *BasicKeystore) Size() int {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return len(ks.order)
}

// Insert adds a keypair to the keystore. Inserting a key twice is a no-op.
func (ks *BasicKeystore) Insert(kp crypto.Keypair) error {
	if kp == nil {
		return ErrNilKeypair
	}

	if kp.Type() != ks.typ {
		return fmt.Errorf("%w: %s in %s keystore", ErrKeyTypeNotSupported, kp.Type(), ks.typ)
	}

	pub := kp.Public().Hex()

	ks.lock.Lock()
	defer ks.lock.Unlock()

	if _, has := ks.keys[pub]; has {
		return nil
	}
	ks.keys[pub] = kp
	ks.order = append(ks.order, pub)
	return nil
}

// GetKeypair returns the keypair of the public key, or nil if it is not held.
func (ks *BasicKeystore) GetKeypair(pub crypto.PublicKey) crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return ks.keys[pub.Hex()]
}

// PublicKeys returns the public keys in insertion order
func (ks *BasicKeystore) PublicKeys() []crypto.PublicKey {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	srkeys := make([]crypto.PublicKey, len(ks.order))
	for i, pub := range ks.order {
		srkeys[i] = ks.keys[pub].Public()
	}
	return srkeys
}

// Keypairs returns the keypairs in insertion order
func (ks *BasicKeystore) Keypairs() []crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	keypairs := make([]crypto.Keypair, len(ks.order))
	for i, pub := range ks.order {
		keypairs[i] = ks.keys[pub]
	}
	return keypairs
}

var _ Keystore = (*BasicKeystore)(nil)
