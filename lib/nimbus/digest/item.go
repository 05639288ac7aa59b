// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/TarekkMA/nimbus/lib/nimbus"
)

// ItemType is the SCALE variant index of a digest item.
type ItemType byte

// Digest item types, as indexed by substrate.
const (
	OtherDigest      ItemType = 0
	ConsensusDigest  ItemType = 4
	SealDigest       ItemType = 5
	PreRuntimeDigest ItemType = 6
)

const (
	// maxItemDataLength bounds the data length accepted when decoding an item.
	maxItemDataLength = 1 << 24
	// maxDigestItems bounds the number of items accepted when decoding a digest.
	maxDigestItems = 1 << 10
	// decodeChunkLength is the most item data allocated ahead of reading it.
	decodeChunkLength = 1 << 16
)

var (
	errUnknownItemType = errors.New("unknown digest item type")
	errDataTooLong     = errors.New("digest item data too long")
	errTooManyItems    = errors.New("too many digest items")
)

func (t ItemType) String() string {
	switch t {
	case OtherDigest:
		return "Other"
	case ConsensusDigest:
		return "Consensus"
	case SealDigest:
		return "Seal"
	case PreRuntimeDigest:
		return "PreRuntime"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(t))
	}
}

func (t ItemType) hasEngineID() bool {
	return t == ConsensusDigest || t == SealDigest || t == PreRuntimeDigest
}

// Item is a header digest item. EngineID is unused by OtherDigest items.
type Item struct {
	Type     ItemType
	EngineID nimbus.ConsensusEngineID
	Data     []byte
}

func (i Item) String() string {
	if !i.Type.hasEngineID() {
		return fmt.Sprintf("%s Data=0x%x", i.Type, i.Data)
	}
	return fmt.Sprintf("%s ConsensusEngineID=%s Data=0x%x", i.Type, string(i.EngineID), i.Data)
}

// Encode SCALE encodes the item.
func (i Item) Encode(encoder scale.Encoder) error {
	if i.Type != OtherDigest && !i.Type.hasEngineID() {
		return fmt.Errorf("%w: %d", errUnknownItemType, byte(i.Type))
	}

	err := encoder.PushByte(byte(i.Type))
	if err != nil {
		return err
	}

	if i.Type.hasEngineID() {
		engineID := i.EngineID.Bytes()
		err = encoder.Write(engineID[:])
		if err != nil {
			return err
		}
	}

	return encodeBytes(encoder, i.Data)
}

// Decode SCALE decodes the item.
func (i *Item) Decode(decoder scale.Decoder) error {
	typ, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	i.Type = ItemType(typ)
	if i.Type != OtherDigest && !i.Type.hasEngineID() {
		return fmt.Errorf("%w: %d", errUnknownItemType, typ)
	}

	i.EngineID = ""
	if i.Type.hasEngineID() {
		engineID := make([]byte, 4)
		err = decoder.Read(engineID)
		if err != nil {
			return fmt.Errorf("reading consensus engine id: %w", err)
		}
		i.EngineID = nimbus.ConsensusEngineID(engineID)
	}

	i.Data, err = decodeBytes(decoder)
	return err
}

func (i Item) copy() Item {
	cp := i
	if i.Data != nil {
		cp.Data = make([]byte, len(i.Data))
		copy(cp.Data, i.Data)
	}
	return cp
}

// Digest is the list of digest items of a header.
type Digest []Item

// Encode SCALE encodes the digest.
func (d Digest) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d))))
	if err != nil {
		return err
	}

	for index, item := range d {
		err = item.Encode(encoder)
		if err != nil {
			return fmt.Errorf("encoding digest item %d: %w", index, err)
		}
	}
	return nil
}

// Decode SCALE decodes the digest.
func (d *Digest) Decode(decoder scale.Decoder) error {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("could not decode length of digest items: %w", err)
	}

	if !length.IsUint64() || length.Uint64() > maxDigestItems {
		return fmt.Errorf("%w: %s", errTooManyItems, length)
	}

	if length.Sign() == 0 {
		*d = nil
		return nil
	}

	var items Digest
	for index := uint64(0); index < length.Uint64(); index++ {
		var item Item
		err = item.Decode(decoder)
		if err != nil {
			return fmt.Errorf("could not decode digest item %d: %w", index, err)
		}
		items = append(items, item)
	}

	*d = items
	return nil
}

// Copy returns a deep copy of the digest.
func (d Digest) Copy() Digest {
	if d == nil {
		return nil
	}

	cp := make(Digest, len(d))
	for index, item := range d {
		cp[index] = item.copy()
	}
	return cp
}

func encodeBytes(encoder scale.Encoder, data []byte) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(data))))
	if err != nil {
		return err
	}
	return encoder.Write(data)
}

func decodeBytes(decoder scale.Decoder) ([]byte, error) {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, err
	}

	if !length.IsUint64() || length.Uint64() > maxItemDataLength {
		return nil, fmt.Errorf("%w: %s bytes", errDataTooLong, length)
	}

	if length.Sign() == 0 {
		return nil, nil
	}

	// the data grows as it is read, so a forged length cannot
	// allocate more than a chunk past the input
	total := length.Uint64()
	data := make([]byte, 0, min(total, decodeChunkLength))
	for uint64(len(data)) < total {
		start := len(data)
		data = append(data, make([]byte, min(total-uint64(start), decodeChunkLength))...)
		err = decoder.Read(data[start:])
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
