// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"

	"github.com/TarekkMA/nimbus/lib/crypto"
)

const (
	// PublicKeyLength is the expected public key length for sr25519.
	PublicKeyLength = 32
	// SeedLength is the expected seed length for sr25519.
	SeedLength = 32
	// PrivateKeyLength is the expected private key length for sr25519.
	PrivateKeyLength = 32
	// SignatureLength is the expected signature length for sr25519.
	SignatureLength = 64

	mnemonicEntropyBits = 128
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

var (
	ErrInvalidSeedLength      = errors.New("seed is not 32 bytes long")
	ErrInvalidPublicKeyLength = errors.New("public key is not 32 bytes long")
	ErrInvalidSignatureLength = errors.New("signature is not 64 bytes long")
	ErrInvalidPrivateKey      = errors.New("invalid private key")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic")
)

var _ crypto.Keypair = (*Keypair)(nil)

// Keypair is a sr25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey holds reference to a sr25519.PublicKey
type PublicKey struct {
	key *sr25519.PublicKey
}

// PrivateKey holds reference to a sr25519.SecretKey
type PrivateKey struct {
	key *sr25519.SecretKey
}

// NewKeypair returns a sr25519 Keypair given a schnorrkel secret key
func NewKeypair(priv *sr25519.SecretKey) (*Keypair, error) {
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// NewKeypairFromSeed returns a new sr25519 Keypair given a 32 byte
// mini secret key, expanded the same way substrate expands it.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", ErrInvalidSeedLength)
	}

	buf := [SeedLength]byte{}
	copy(buf[:], seed)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	priv := msc.ExpandEd25519()
	return NewKeypair(priv)
}

// NewKeypairFromSeedHex returns a new sr25519 Keypair given a 0x prefixed
// hex encoded 32 byte seed.
func NewKeypairFromSeedHex(in string) (*Keypair, error) {
	seed, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	return NewKeypairFromSeed(seed)
}

// NewKeypairFromMnenomic returns a new Keypair using the given mnemonic and password.
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	msc, err := sr25519.MiniSecretKeyFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMnemonic, err)
	}

	return NewKeypair(msc.ExpandEd25519())
}

// NewMnemonic returns a new random 12 word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

// GenerateKeypair returns a new sr25519 keypair
func GenerateKeypair() (*Keypair, error) {
	priv, _, err := sr25519.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return NewKeypair(priv)
}

// Type returns Sr25519Type
func (*Keypair) Type() crypto.KeyType {
	return crypto.Sr25519Type
}

// Sign uses the keypair to sign the message using the sr25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the public key corresponding to this keypair
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the private key corresponding to this keypair
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// NewPublicKey returns a sr25519 public key from 32 byte input
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, ErrInvalidPublicKeyLength
	}

	buf := [PublicKeyLength]byte{}
	copy(buf[:], in)
	key, err := sr25519.NewPublicKey(buf)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// Verify uses the sr25519 signature algorithm to verify that the message was signed by
// this public key; it returns true if this key created the signature for the message
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, ErrInvalidSignatureLength
	}

	b := [SignatureLength]byte{}
	copy(b[:], sig)

	s := &sr25519.Signature{}
	err := s.Decode(b)
	if err != nil {
		return false, err
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return k.key.Verify(s, t)
}

// Encode returns the 32 byte encoding of the public key
func (k *PublicKey) Encode() []byte {
	if k.key == nil {
		return nil
	}

	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes the input bytes into a public key and sets the receiver the decoded key
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return ErrInvalidPublicKeyLength
	}

	b := [PublicKeyLength]byte{}
	copy(b[:], in)
	pub := &sr25519.PublicKey{}
	err := pub.Decode(b)
	if err != nil {
		return err
	}

	k.key = pub
	return nil
}

// Hex returns the public key as a '0x' prefixed hex string
func (k *PublicKey) Hex() string {
	return fmt.Sprintf("0x%x", k.Encode())
}

// Sign uses the private key to sign the message using the sr25519 signature algorithm
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if k.key == nil {
		return nil, ErrInvalidPrivateKey
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	sig, err := k.key.Sign(t)
	if err != nil {
		return nil, err
	}

	enc := sig.Encode()
	return enc[:], nil
}

// Public returns the public key corresponding to this private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	if k.key == nil {
		return nil, ErrInvalidPrivateKey
	}

	pub, err := k.key.Public()
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// Encode returns the 32 byte encoding of the private key
func (k *PrivateKey) Encode() []byte {
	if k.key == nil {
		return nil
	}

	enc := k.key.Encode()
	return enc[:]
}

// Decode decodes the input bytes into a private key and sets the receiver the decoded key
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return ErrInvalidPrivateKey
	}

	b := [PrivateKeyLength]byte{}
	copy(b[:], in)
	priv := &sr25519.SecretKey{}
	err := priv.Decode(b)
	if err != nil {
		return err
	}

	k.key = priv
	return nil
}

// Hex returns the private key as a '0x' prefixed hex string
func (k *PrivateKey) Hex() string {
	return fmt.Sprintf("0x%x", k.Encode())
}
