// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

func Test_Header_Encode(t *testing.T) {
	t.Parallel()

	header := Header{
		ParentHash:     common.Hash{1},
		Number:         1,
		StateRoot:      common.Hash{2},
		ExtrinsicsRoot: common.Hash{3},
	}

	encoding, err := common.Marshal(header)
	require.NoError(t, err)

	expected := append([]byte{}, header.ParentHash[:]...)
	expected = append(expected, 4) // compact 1
	expected = append(expected, header.StateRoot[:]...)
	expected = append(expected, header.ExtrinsicsRoot[:]...)
	expected = append(expected, 0) // empty digest
	assert.Equal(t, expected, encoding)
}

func Test_Header_roundTrip(t *testing.T) {
	t.Parallel()

	headers := []*Header{
		newTestHeader(nimbus.NimbusID{1}),
		{Number: math.MaxUint32},
		{
			Number: 1 << 20,
			Digest: Digest{
				{Type: OtherDigest, Data: []byte{1, 2, 3}},
				NewNimbusPreDigest(nimbus.NimbusID{9}),
				NewNimbusSeal(nimbus.NimbusSignature{8}),
			},
		},
	}

	for _, header := range headers {
		encoding, err := common.Marshal(*header)
		require.NoError(t, err)

		decoded, err := DecodeHeader(encoding)
		require.NoError(t, err)
		assert.Equal(t, header, decoded)
		assert.Equal(t, header.Hash(), decoded.Hash())
	}
}

func Test_DecodeHeader_errors(t *testing.T) {
	t.Parallel()

	_, err := DecodeHeader([]byte{1, 2, 3})
	assert.Error(t, err)

	encoding := common.MustMarshal(Header{})
	_, err = DecodeHeader(append(encoding, 0))
	assert.ErrorIs(t, err, common.ErrTrailingBytes)
}

func Test_Header_Hash(t *testing.T) {
	t.Parallel()

	header := newTestHeader(nimbus.NimbusID{1})
	hash := header.Hash()

	assert.Equal(t, common.MustBlake2bHash(common.MustMarshal(*header)), hash)

	other := header.Copy()
	other.Number++
	assert.NotEqual(t, hash, other.Hash())
	assert.Equal(t, hash, header.Hash())
}
