// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package runtime executes the nimbus authorship checks of the state
// transition and answers eligibility queries against historical state.
package runtime

import (
	"fmt"
	"sync"

	"github.com/TarekkMA/nimbus/internal/log"
	"github.com/TarekkMA/nimbus/internal/metrics"
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/beacon"
	"github.com/TarekkMA/nimbus/lib/nimbus/digest"
	"github.com/TarekkMA/nimbus/lib/nimbus/filter"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// Config is the runtime configuration.
type Config struct {
	// Filter decides the eligibility of authors, both when executing
	// blocks and when answering AuthorFilterAPI queries.
	// It defaults to filter.Anyone.
	Filter filter.Builder
	// Preliminary is the cheap filter reported by CheckAuthor.
	// It defaults to filter.Anyone.
	Preliminary filter.Builder
	// Beacon defaults to beacon.RelayChainBuilder.
	Beacon       beacon.Builder
	EventHandler nimbus.EventHandler
	Logger       log.LeveledLogger
	Metrics      metrics.Recorder
}

func (c *Config) setDefaults() {
	if c.Filter == nil {
		c.Filter = filter.Anyone
	}
	if c.Preliminary == nil {
		c.Preliminary = filter.Anyone
	}
	if c.Beacon == nil {
		c.Beacon = beacon.RelayChainBuilder
	}
	if c.EventHandler == nil {
		c.EventHandler = nimbus.NoopEventHandler{}
	}
	if c.Logger == nil {
		c.Logger = log.NewFromGlobal(log.AddContext("pkg", "nimbus/runtime"))
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
}

// Outcome is the authorship event of an executed block.
type Outcome struct {
	Author nimbus.NimbusID
	Slot   nimbus.Slot
	Hash   common.Hash
}

// Runtime runs the authorship checks of the state transition.
type Runtime struct {
	// serialises block execution
	mutex sync.Mutex

	store        *state.Store
	filter       filter.Builder
	preliminary  filter.Builder
	beacon       beacon.Builder
	eventHandler nimbus.EventHandler
	logger       log.LeveledLogger
	metrics      metrics.Recorder
}

// New creates a runtime reading and writing snapshots in the store.
func New(store *state.Store, cfg Config) *Runtime {
	cfg.setDefaults()

	return &Runtime{
		store:        store,
		filter:       cfg.Filter,
		preliminary:  cfg.Preliminary,
		beacon:       cfg.Beacon,
		eventHandler: cfg.EventHandler,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}
}

// InitialiseGenesis stores the genesis snapshot and marks it as best block.
func (r *Runtime) InitialiseGenesis(genesis *state.Snapshot) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	err := r.store.Put(genesis)
	if err != nil {
		return fmt.Errorf("storing genesis: %w", err)
	}

	err = r.store.SetBest(genesis.Hash)
	if err != nil {
		return fmt.Errorf("setting genesis as best block: %w", err)
	}

	r.logger.Infof("initialised genesis %s", genesis)
	return nil
}

// ExecuteBlock runs the full authorship check of an unsealed block against
// the state of its parent. The slot is derived from the block context by
// the beacon. If the author named by the nimbus pre-runtime digest is
// eligible, the event handler is notified once and the block state is
// stored. Otherwise an error wrapping ErrCannotBeAuthor is returned and
// nothing is notified or stored. A context the beacon cannot map to a slot
// leaves every author ineligible. A block executed before is refused with
// ErrBlockAlreadyExecuted for as long as its parent state is held.
func (r *Runtime) ExecuteBlock(header *digest.Header, ctx beacon.BlockContext) (*Outcome, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	hash := header.Hash()
	if r.store.Stored(hash, header.ParentHash) {
		return nil, fmt.Errorf("%w: %s", ErrBlockAlreadyExecuted, hash)
	}

	parent, err := r.store.Get(header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParent, err)
	}

	if header.Number != parent.Number+1 {
		return nil, fmt.Errorf("%w: block #%d on parent #%d",
			ErrInvalidBlockNumber, header.Number, parent.Number)
	}

	author, err := digest.ExtractAuthor(header)
	if err != nil {
		return nil, fmt.Errorf("extracting author: %w", err)
	}

	view, err := r.store.View(header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParent, err)
	}

	slotBeacon, err := r.beacon(ctx)
	if err != nil {
		r.metrics.FullCheck(false)
		r.logger.Debugf("rejected block %s: %s", hash, err)
		return nil, fmt.Errorf("%w: author %s: %w", ErrCannotBeAuthor, author, err)
	}

	slot := slotBeacon.Slot()
	eligible := r.filter(view).CanAuthor(author, slot)
	r.metrics.FullCheck(eligible)
	if !eligible {
		r.logger.Debugf("rejected block %s: author %s is not eligible at slot %d", hash, author, slot)
		return nil, fmt.Errorf("%w: author %s at slot %d", ErrCannotBeAuthor, author, slot)
	}

	r.eventHandler.NoteAuthor(author)
	r.metrics.AuthorNoted()

	child := parent.Child(hash, header.Number, ctx.RelayParentNumber)
	err = r.store.PutChild(child, header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("storing state of block %s: %w", hash, err)
	}

	err = r.store.SetBest(hash)
	if err != nil {
		return nil, fmt.Errorf("setting best block: %w", err)
	}

	r.logger.Debugf("executed block %s authored by %s at slot %d", header, author, slot)
	return &Outcome{
		Author: author,
		Slot:   slot,
		Hash:   hash,
	}, nil
}

// CheckAuthor reports why an author is or is not eligible at the slot
// against the state of the block at. It is a diagnostic and is never used
// to accept or reject a block.
func (r *Runtime) CheckAuthor(at common.Hash, author nimbus.NimbusID, slot nimbus.Slot) (
	nimbus.AuthorCheckResult, error) {
	view, err := r.store.View(at)
	if err != nil {
		return nimbus.FailsPreliminaryChecks, err
	}

	return nimbus.CheckAuthor(r.preliminary(view), r.filter(view), author, slot), nil
}
