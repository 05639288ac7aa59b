// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// genesisState is the SCALE encoding of the authority data the genesis
// state root commits to.
type genesisState struct {
	snapshot *state.Snapshot
}

func (g genesisState) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(g.snapshot.Authorities))))
	if err != nil {
		return err
	}

	for _, author := range g.snapshot.Authorities {
		err = author.Encode(encoder)
		if err != nil {
			return err
		}
	}

	err = encoder.Encode(g.snapshot.EligibleCount)
	if err != nil {
		return err
	}

	err = encoder.Write(g.snapshot.Randomness[:])
	if err != nil {
		return err
	}

	return encoder.Encode(g.snapshot.RelayParentNumber)
}
