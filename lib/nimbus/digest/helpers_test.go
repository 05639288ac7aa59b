// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/crypto/sr25519"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

const (
	aliceSeed = "0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a"
	bobSeed   = "0x398f0c28f98885e046333d4a41c19cee4c37368a9832c6502f6cfd182e2aef89"
)

func newTestPair(t *testing.T, seed string) *nimbus.NimbusPair {
	t.Helper()

	keypair, err := sr25519.NewKeypairFromSeedHex(seed)
	require.NoError(t, err)
	pair, err := nimbus.NewNimbusPair(keypair)
	require.NoError(t, err)
	return pair
}

func newTestHeader(author nimbus.NimbusID) *Header {
	return &Header{
		ParentHash:     common.Hash{1},
		Number:         2,
		StateRoot:      common.Hash{3},
		ExtrinsicsRoot: common.Hash{4},
		Digest:         Digest{NewNimbusPreDigest(author)},
	}
}
