// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"
	"fmt"

	"github.com/TarekkMA/nimbus/lib/crypto"
	"github.com/TarekkMA/nimbus/lib/crypto/sr25519"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

var (
	ErrInvalidKeystoreName = errors.New("invalid keystore name")
	ErrKeyTypeNotSupported = errors.New("given key type is not supported by this keystore")
	ErrNilKeypair          = errors.New("nil keypair")
)

// Name represents a defined keystore name
type Name string

// NmbsName is the name of the keystore holding nimbus author keys.
// It is the nimbus key type identifier.
var NmbsName = Name(nimbus.NimbusKeyID)

// Keystore provides key management functionality
type Keystore interface {
	Name() Name
	Type() crypto.KeyType
	Insert(kp crypto.Keypair) error
	Keypairs() []crypto.Keypair
	GetKeypair(pub crypto.PublicKey) crypto.Keypair
	PublicKeys() []crypto.PublicKey
	Size() int
}

// GlobalKeystore defines the various keystores used by the node
type GlobalKeystore struct {
	Nmbs Keystore
}

// NewGlobalKeystore returns a new GlobalKeystore
func NewGlobalKeystore() *GlobalKeystore {
	return &GlobalKeystore{
		Nmbs: NewBasicKeystore(NmbsName, crypto.Sr25519Type),
	}
}

// GetKeystore returns a keystore given its name
func (k *GlobalKeystore) GetKeystore(name []byte) (Keystore, error) {
	switch Name(name) {
	case NmbsName:
		return k.Nmbs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKeystoreName, name)
	}
}

// NimbusPairs returns the keys of the keystore as nimbus keypairs,
// in insertion order.
func NimbusPairs(ks Keystore) ([]*nimbus.NimbusPair, error) {
	keypairs := ks.Keypairs()
	pairs := make([]*nimbus.NimbusPair, 0, len(keypairs))
	for _, kp := range keypairs {
		sr25519Keypair, ok := kp.(*sr25519.Keypair)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyTypeNotSupported, kp.Type())
		}

		pair, err := nimbus.NewNimbusPair(sr25519Keypair)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
