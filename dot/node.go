// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package dot assembles the nimbus components of a node from its
// configuration and genesis.
package dot

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TarekkMA/nimbus/config"
	"github.com/TarekkMA/nimbus/config/genesis"
	"github.com/TarekkMA/nimbus/internal/log"
	"github.com/TarekkMA/nimbus/internal/metrics"
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/keystore"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/client"
	"github.com/TarekkMA/nimbus/lib/nimbus/runtime"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

var (
	ErrNilConfig   = errors.New("nil configuration")
	ErrNilGenesis  = errors.New("nil genesis")
	ErrNilKeystore = errors.New("nil keystore")
)

// Node is a container for the nimbus components of a node.
type Node struct {
	Name     string
	Genesis  common.Hash
	Runtime  *runtime.Runtime
	Author   *client.Author
	Importer *client.Importer
	Metrics  metrics.Recorder
}

// NewNode creates the nimbus components of a node from the configuration
// and genesis, and initialises the state with the genesis snapshot.
// The event handler is notified of every imported block author and may be
// nil. Metrics are registered on the registerer unless it is nil.
func NewNode(cfg *config.Config, gen *genesis.Genesis, ks *keystore.GlobalKeystore,
	handler nimbus.EventHandler, registerer prometheus.Registerer) (*Node, error) {
	switch {
	case cfg == nil:
		return nil, ErrNilConfig
	case gen == nil:
		return nil, ErrNilGenesis
	case ks == nil:
		return nil, ErrNilKeystore
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	log.Patch(log.SetLevel(level))

	logger.Infof("🕸️ initialising node %s with policies %v and %s beacon...",
		gen.Name, cfg.Filter.Policies, cfg.Beacon.Kind)

	filterBuilder, err := cfg.FilterBuilder()
	if err != nil {
		return nil, fmt.Errorf("creating author filter: %w", err)
	}

	beaconBuilder, err := cfg.BeaconBuilder()
	if err != nil {
		return nil, fmt.Errorf("creating slot beacon: %w", err)
	}

	snapshot, err := gen.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("loading genesis: %w", err)
	}

	store, err := state.NewStore(cfg.State.Retained)
	if err != nil {
		return nil, fmt.Errorf("creating state store: %w", err)
	}

	recorder, err := createMetrics(registerer)
	if err != nil {
		return nil, err
	}

	rt := runtime.New(store, runtime.Config{
		Filter:       filterBuilder,
		Beacon:       beaconBuilder,
		EventHandler: handler,
		Metrics:      recorder,
	})

	err = rt.InitialiseGenesis(snapshot)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Name:     gen.Name,
		Genesis:  snapshot.Hash,
		Runtime:  rt,
		Author:   client.NewAuthor(ks.Nmbs, rt, beaconBuilder),
		Importer: client.NewImporter(rt),
		Metrics:  recorder,
	}

	logger.Infof("node %s initialised with %d local nimbus keys", node.Name, ks.Nmbs.Size())
	return node, nil
}

func createMetrics(registerer prometheus.Registerer) (metrics.Recorder, error) {
	if registerer == nil {
		return metrics.Noop{}, nil
	}

	recorder, err := metrics.NewPrometheus(registerer)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return recorder, nil
}
