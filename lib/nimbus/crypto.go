// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/crypto/sr25519"
)

var (
	// ErrInvalidNimbusIDLength is returned when building a NimbusID from
	// a slice that is not 32 bytes long.
	ErrInvalidNimbusIDLength = errors.New("nimbus id is not 32 bytes long")
	// ErrInvalidSignatureLength is returned when building a NimbusSignature
	// from a slice that is not 64 bytes long.
	ErrInvalidSignatureLength = errors.New("nimbus signature is not 64 bytes long")
	// ErrNilKeypair is returned when a NimbusPair is built without a keypair.
	ErrNilKeypair = errors.New("nil keypair")
)

// NimbusID is a nimbus author identifier, the sr25519 public key of the author.
// It is only ever compared on chain, never reconstructed.
type NimbusID [sr25519.PublicKeyLength]byte

// NewNimbusID returns the NimbusID held in the given 32 bytes.
func NewNimbusID(in []byte) (id NimbusID, err error) {
	if len(in) != len(id) {
		return id, fmt.Errorf("%w: got %d bytes", ErrInvalidNimbusIDLength, len(in))
	}
	copy(id[:], in)
	return id, nil
}

// String returns the 0x prefixed hex encoding of the id.
func (id NimbusID) String() string {
	return fmt.Sprintf("0x%x", id[:])
}

// ToBytes returns a copy of the raw public key bytes.
func (id NimbusID) ToBytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// Verify returns true if sig is a valid signature of msg by this id.
func (id NimbusID) Verify(msg []byte, sig NimbusSignature) (bool, error) {
	pub, err := sr25519.NewPublicKey(id[:])
	if err != nil {
		return false, fmt.Errorf("decoding public key %s: %w", id, err)
	}
	return pub.Verify(msg, sig[:])
}

// Encode SCALE encodes the id.
func (id NimbusID) Encode(encoder scale.Encoder) error {
	return encoder.Write(id[:])
}

// Decode SCALE decodes the id.
func (id *NimbusID) Decode(decoder scale.Decoder) error {
	return decoder.Read(id[:])
}

// DecodeNimbusID decodes a SCALE encoded NimbusID.
func DecodeNimbusID(data []byte) (id NimbusID, err error) {
	err = common.Unmarshal(data, &id)
	return id, err
}

// NimbusSignature is a signature produced by the holder of a NimbusID.
type NimbusSignature [sr25519.SignatureLength]byte

// NewNimbusSignature returns the NimbusSignature held in the given 64 bytes.
func NewNimbusSignature(in []byte) (sig NimbusSignature, err error) {
	if len(in) != len(sig) {
		return sig, fmt.Errorf("%w: got %d bytes", ErrInvalidSignatureLength, len(in))
	}
	copy(sig[:], in)
	return sig, nil
}

// String returns the 0x prefixed hex encoding of the signature.
func (sig NimbusSignature) String() string {
	return fmt.Sprintf("0x%x", sig[:])
}

// Encode SCALE encodes the signature.
func (sig NimbusSignature) Encode(encoder scale.Encoder) error {
	return encoder.Write(sig[:])
}

// Decode SCALE decodes the signature.
func (sig *NimbusSignature) Decode(decoder scale.Decoder) error {
	return decoder.Read(sig[:])
}

// DecodeNimbusSignature decodes a SCALE encoded NimbusSignature.
func DecodeNimbusSignature(data []byte) (sig NimbusSignature, err error) {
	err = common.Unmarshal(data, &sig)
	return sig, err
}

// NimbusPair is the keypair held by a block producer.
type NimbusPair struct {
	keypair *sr25519.Keypair
	public  NimbusID
}

// NewNimbusPair wraps a sr25519 keypair as a nimbus keypair.
func NewNimbusPair(keypair *sr25519.Keypair) (*NimbusPair, error) {
	if keypair == nil {
		return nil, ErrNilKeypair
	}

	public, err := NewNimbusID(keypair.Public().Encode())
	if err != nil {
		return nil, err
	}

	return &NimbusPair{
		keypair: keypair,
		public:  public,
	}, nil
}

// Public returns the author identifier of the pair.
func (p *NimbusPair) Public() NimbusID {
	return p.public
}

// Sign signs the message.
func (p *NimbusPair) Sign(msg []byte) (sig NimbusSignature, err error) {
	raw, err := p.keypair.Sign(msg)
	if err != nil {
		return sig, err
	}
	return NewNimbusSignature(raw)
}
