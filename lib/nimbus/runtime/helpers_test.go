// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"encoding/binary"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/digest"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

var (
	alice   = nimbus.NimbusID{1}
	bob     = nimbus.NimbusID{2}
	charlie = nimbus.NimbusID{3}
	mallory = nimbus.NimbusID{0xff}

	genesisHash = common.Hash{0xee}
)

func newTestGenesis() *state.Snapshot {
	return &state.Snapshot{
		Hash:        genesisHash,
		Authorities: []nimbus.NimbusID{alice, bob, charlie},
		Randomness:  state.Randomness{7},
	}
}

func newTestRuntime(t *testing.T, cfg Config) *Runtime {
	t.Helper()

	store, err := state.NewStore(state.DefaultRetained)
	require.NoError(t, err)

	runtime := New(store, cfg)
	err = runtime.InitialiseGenesis(newTestGenesis())
	require.NoError(t, err)
	return runtime
}

// newTestHeader returns the header of a child of the parent authored by
// author. The nonce makes headers with the same author distinct.
func newTestHeader(parent common.Hash, number uint32, author nimbus.NimbusID, nonce uint32) *digest.Header {
	header := &digest.Header{
		ParentHash: parent,
		Number:     number,
		Digest:     digest.Digest{digest.NewNimbusPreDigest(author)},
	}
	binary.LittleEndian.PutUint32(header.ExtrinsicsRoot[:], nonce)
	return header
}

func newTestRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}
