// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package digest encodes block headers and the nimbus digest items
// naming and authenticating the author of a block.
package digest

import (
	"errors"
	"fmt"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

var (
	// ErrNoPreDigest is returned when a header carries no nimbus pre-runtime digest.
	ErrNoPreDigest = errors.New("no nimbus pre-runtime digest")
	// ErrMultiplePreDigests is returned when a header carries more than one
	// nimbus pre-runtime digest.
	ErrMultiplePreDigests = errors.New("multiple nimbus pre-runtime digests")
	// ErrNoSeal is returned when the last digest item of a header is not a nimbus seal.
	ErrNoSeal = errors.New("last digest item is not a nimbus seal")
	// ErrBadSignature is returned when the seal is not the author's signature of the header.
	ErrBadSignature = errors.New("could not verify seal signature")
	// ErrInvalidDigestData is returned when a nimbus digest item cannot be decoded.
	ErrInvalidDigestData = errors.New("invalid nimbus digest data")
	// ErrAuthorMismatch is returned when sealing a header with a key that is
	// not the author named by its pre-runtime digest.
	ErrAuthorMismatch = errors.New("sealing key is not the header author")
)

// NewNimbusPreDigest returns the pre-runtime digest naming the block author.
func NewNimbusPreDigest(author nimbus.NimbusID) Item {
	return Item{
		Type:     PreRuntimeDigest,
		EngineID: nimbus.EngineID,
		Data:     common.MustMarshal(author),
	}
}

// NewNimbusSeal returns the seal digest carrying the author signature.
func NewNimbusSeal(signature nimbus.NimbusSignature) Item {
	return Item{
		Type:     SealDigest,
		EngineID: nimbus.EngineID,
		Data:     common.MustMarshal(signature),
	}
}

func isNimbus(item Item, typ ItemType) bool {
	return item.Type == typ && item.EngineID == nimbus.EngineID
}

// ExtractAuthor returns the author named by the only nimbus
// pre-runtime digest of the header.
func ExtractAuthor(header *Header) (author nimbus.NimbusID, err error) {
	var preDigest *Item
	for i := range header.Digest {
		if !isNimbus(header.Digest[i], PreRuntimeDigest) {
			continue
		}

		if preDigest != nil {
			return author, fmt.Errorf("%w: in header %s", ErrMultiplePreDigests, header)
		}
		preDigest = &header.Digest[i]
	}

	if preDigest == nil {
		return author, fmt.Errorf("%w: in header %s", ErrNoPreDigest, header)
	}

	author, err = nimbus.DecodeNimbusID(preDigest.Data)
	if err != nil {
		return author, fmt.Errorf("%w: decoding author: %s", ErrInvalidDigestData, err)
	}
	return author, nil
}

// Seal returns a copy of the header with the nimbus seal appended. The seal
// signs the hash of the unsealed header with the pair, which must belong to
// the author of the header.
func Seal(header *Header, pair *nimbus.NimbusPair) (*Header, error) {
	author, err := ExtractAuthor(header)
	if err != nil {
		return nil, err
	}

	if author != pair.Public() {
		return nil, fmt.Errorf("%w: author %s, key %s", ErrAuthorMismatch, author, pair.Public())
	}

	hash := header.Hash()
	signature, err := pair.Sign(hash[:])
	if err != nil {
		return nil, fmt.Errorf("signing header %s: %w", hash, err)
	}

	sealed := header.Copy()
	sealed.Digest = append(sealed.Digest, NewNimbusSeal(signature))
	return sealed, nil
}

// VerifySeal checks the last digest item of the header is the signature of
// the rest of the header by its author. It returns the unsealed header and
// the author.
func VerifySeal(header *Header) (unsealed *Header, author nimbus.NimbusID, err error) {
	if len(header.Digest) == 0 {
		return nil, author, fmt.Errorf("%w: header %s", ErrNoSeal, header)
	}

	last := header.Digest[len(header.Digest)-1]
	if !isNimbus(last, SealDigest) {
		return nil, author, fmt.Errorf("%w: found %s", ErrNoSeal, last.Type)
	}

	signature, err := nimbus.DecodeNimbusSignature(last.Data)
	if err != nil {
		return nil, author, fmt.Errorf("%w: decoding signature: %s", ErrInvalidDigestData, err)
	}

	unsealed = header.Copy()
	unsealed.Digest = unsealed.Digest[:len(unsealed.Digest)-1]

	author, err = ExtractAuthor(unsealed)
	if err != nil {
		return nil, author, err
	}

	hash := unsealed.Hash()
	ok, err := author.Verify(hash[:], signature)
	if err != nil {
		return nil, author, fmt.Errorf("%w: %s", ErrBadSignature, err)
	}
	if !ok {
		return nil, author, fmt.Errorf("%w: by author %s of header %s", ErrBadSignature, author, hash)
	}

	return unsealed, author, nil
}
