// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

// ConsensusEngineID is a 4-character identifier of the consensus engine
// that produced a digest item.
type ConsensusEngineID string

// Bytes returns the identifier as the 4 bytes embedded in headers.
func (id ConsensusEngineID) Bytes() (b [4]byte) {
	copy(b[:], id)
	return b
}

// KeyTypeID is a 4-character identifier of the key material
// held in a keystore.
type KeyTypeID string

// Bytes returns the identifier as 4 bytes.
func (id KeyTypeID) Bytes() (b [4]byte) {
	copy(b[:], id)
	return b
}

const (
	// EngineID is the consensus engine identifier for nimbus consensus.
	// The same identifier is used whatever filters are installed.
	EngineID ConsensusEngineID = "nmbs"

	// NimbusKeyID is the key type used by nimbus in the keystore,
	// whatever filters are installed.
	NimbusKeyID KeyTypeID = "nmbs"
)
