// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package genesis parses the genesis authority data of a nimbus chain.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TarekkMA/nimbus/config"
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/digest"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// ErrNoAuthorities is returned when the genesis has no authority.
var ErrNoAuthorities = errors.New("genesis has no authority")

// Genesis stores the data parsed from the genesis configuration file
type Genesis struct {
	Name              string   `json:"name"`
	ID                string   `json:"id"`
	RelayParentNumber uint32   `json:"relayParentNumber"`
	Authorities       []string `json:"authorities"`
	EligibleCount     uint32   `json:"eligibleCount"`
	Randomness        string   `json:"randomness"`
}

// ParseJSON parses a JSON formatted genesis file
func ParseJSON(file string) (*Genesis, error) {
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Decode(f)
}

// Decode decodes a JSON formatted genesis.
func Decode(r io.Reader) (*Genesis, error) {
	g := new(Genesis)
	err := json.NewDecoder(r).Decode(g)
	if err != nil {
		return nil, fmt.Errorf("decoding genesis: %w", err)
	}
	return g, nil
}

// Snapshot returns the genesis state snapshot. Its hash is the hash of
// the genesis header, whose state root commits to the authority data.
func (g *Genesis) Snapshot() (*state.Snapshot, error) {
	if len(g.Authorities) == 0 {
		return nil, ErrNoAuthorities
	}

	authorities := make([]nimbus.NimbusID, len(g.Authorities))
	for i, s := range g.Authorities {
		id, err := config.ParseNimbusID(s)
		if err != nil {
			return nil, fmt.Errorf("parsing authority %d: %w", i, err)
		}
		authorities[i] = id
	}

	var randomness state.Randomness
	if g.Randomness != "" {
		hash, err := common.HexToHash(g.Randomness)
		if err != nil {
			return nil, fmt.Errorf("parsing randomness: %w", err)
		}
		randomness = state.Randomness(hash)
	}

	snapshot := &state.Snapshot{
		RelayParentNumber: g.RelayParentNumber,
		Authorities:       authorities,
		EligibleCount:     g.EligibleCount,
		Randomness:        randomness,
	}

	header := digest.Header{
		StateRoot: common.MustBlake2bHash(common.MustMarshal(genesisState{snapshot})),
	}
	snapshot.Hash = header.Hash()
	return snapshot, nil
}
