// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"fmt"
	"math"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/TarekkMA/nimbus/lib/common"
)

// Header is a block header, SCALE encoded the way substrate encodes it.
type Header struct {
	ParentHash     common.Hash
	Number         uint32
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         Digest
}

// Encode SCALE encodes the header.
func (h Header) Encode(encoder scale.Encoder) error {
	err := encoder.Write(h.ParentHash[:])
	if err != nil {
		return err
	}

	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(h.Number)))
	if err != nil {
		return err
	}

	err = encoder.Write(h.StateRoot[:])
	if err != nil {
		return err
	}

	err = encoder.Write(h.ExtrinsicsRoot[:])
	if err != nil {
		return err
	}

	return h.Digest.Encode(encoder)
}

// Decode SCALE decodes the header.
func (h *Header) Decode(decoder scale.Decoder) error {
	err := decoder.Read(h.ParentHash[:])
	if err != nil {
		return fmt.Errorf("reading parent hash: %w", err)
	}

	number, err := decoder.DecodeUintCompact()
	if err != nil {
		return fmt.Errorf("reading number: %w", err)
	}
	if !number.IsUint64() || number.Uint64() > math.MaxUint32 {
		return fmt.Errorf("block number %s overflows 32 bits", number)
	}
	h.Number = uint32(number.Uint64())

	err = decoder.Read(h.StateRoot[:])
	if err != nil {
		return fmt.Errorf("reading state root: %w", err)
	}

	err = decoder.Read(h.ExtrinsicsRoot[:])
	if err != nil {
		return fmt.Errorf("reading extrinsics root: %w", err)
	}

	return h.Digest.Decode(decoder)
}

// DecodeHeader decodes a SCALE encoded header.
func DecodeHeader(data []byte) (*Header, error) {
	header := new(Header)
	err := common.Unmarshal(data, header)
	if err != nil {
		return nil, err
	}
	return header, nil
}

// Hash returns the blake2b hash of the encoded header.
func (h *Header) Hash() common.Hash {
	return common.MustBlake2bHash(common.MustMarshal(*h))
}

// Copy returns a deep copy of the header.
func (h *Header) Copy() *Header {
	cp := *h
	cp.Digest = h.Digest.Copy()
	return &cp
}

func (h *Header) String() string {
	return fmt.Sprintf("#%d (parent %s) with %d digest items",
		h.Number, h.ParentHash.Short(), len(h.Digest))
}
