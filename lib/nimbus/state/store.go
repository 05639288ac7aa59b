// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/TarekkMA/nimbus/internal/log"
	"github.com/TarekkMA/nimbus/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "nimbus/state"))

// DefaultRetained is the number of snapshots retained by default.
const DefaultRetained = 256

var (
	// ErrStateNotFound is returned when no snapshot is held for a block hash.
	ErrStateNotFound = errors.New("state not found")
	// ErrNilSnapshot is returned when putting a nil snapshot.
	ErrNilSnapshot = errors.New("nil snapshot")
	// ErrSnapshotExists is returned when putting a snapshot for a block
	// hash already held. Snapshots are immutable once stored.
	ErrSnapshotExists = errors.New("snapshot already exists")
	// ErrInvalidRetained is returned when creating a store retaining
	// no snapshot.
	ErrInvalidRetained = errors.New("retained snapshots must be positive")
)

type entry struct {
	snapshot *Snapshot
	view     AuthorityView
	// children holds the hashes of the blocks stored on top of this one.
	// It is evicted together with the entry, so a child evicted first
	// is still known while its parent is held.
	children map[common.Hash]struct{}
}

// Store holds the snapshots of the most recently used blocks.
// It is safe for concurrent use.
type Store struct {
	mutex sync.Mutex
	cache *lru.Cache
	best  common.Hash
}

// NewStore creates a store retaining at most retained snapshots.
func NewStore(retained int) (*Store, error) {
	if retained <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRetained, retained)
	}

	cache, err := lru.NewWithEvict(retained, func(key, _ interface{}) {
		logger.Tracef("evicted snapshot for block %s", key.(common.Hash).Short())
	})
	if err != nil {
		return nil, fmt.Errorf("creating snapshot cache: %w", err)
	}

	return &Store{
		cache: cache,
	}, nil
}

// Put stores a copy of the snapshot, keyed by its block hash.
func (s *Store) Put(snapshot *Snapshot) error {
	if snapshot == nil {
		return ErrNilSnapshot
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cache.Contains(snapshot.Hash) {
		return fmt.Errorf("%w: for block %s", ErrSnapshotExists, snapshot.Hash)
	}

	stored := snapshot.Copy()
	s.cache.Add(stored.Hash, &entry{
		snapshot: stored,
		view:     stored.View(),
	})
	logger.Debugf("stored %s", stored)
	return nil
}

// PutChild stores a copy of the snapshot of a block executed on top of the
// parent block and records it as a child of the parent.
func (s *Store) PutChild(snapshot *Snapshot, parent common.Hash) error {
	if snapshot == nil {
		return ErrNilSnapshot
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cache.Contains(snapshot.Hash) {
		return fmt.Errorf("%w: for block %s", ErrSnapshotExists, snapshot.Hash)
	}

	value, ok := s.cache.Peek(parent)
	if !ok {
		return fmt.Errorf("%w: for parent block %s", ErrStateNotFound, parent)
	}
	parentEntry := value.(*entry)
	if parentEntry.children == nil {
		parentEntry.children = make(map[common.Hash]struct{})
	}
	parentEntry.children[snapshot.Hash] = struct{}{}

	stored := snapshot.Copy()
	s.cache.Add(stored.Hash, &entry{
		snapshot: stored,
		view:     stored.View(),
	})
	logger.Debugf("stored %s on top of block %s", stored, parent.Short())
	return nil
}

// Stored returns true if the snapshot of the block is held, or if the
// block was stored as a child of the parent block and the parent is held.
func (s *Store) Stored(hash, parent common.Hash) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cache.Contains(hash) {
		return true
	}

	value, ok := s.cache.Peek(parent)
	if !ok {
		return false
	}
	_, ok = value.(*entry).children[hash]
	return ok
}

// Get returns a copy of the snapshot of the block.
func (s *Store) Get(hash common.Hash) (*Snapshot, error) {
	e, err := s.get(hash)
	if err != nil {
		return nil, err
	}
	return e.snapshot.Copy(), nil
}

// View returns the authority view of the block.
func (s *Store) View(hash common.Hash) (AuthorityView, error) {
	e, err := s.get(hash)
	if err != nil {
		return nil, err
	}
	return e.view, nil
}

// Has returns true if the snapshot of the block is held.
func (s *Store) Has(hash common.Hash) bool {
	return s.cache.Contains(hash)
}

// SetBest marks the block as the best block.
func (s *Store) SetBest(hash common.Hash) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.cache.Contains(hash) {
		return fmt.Errorf("%w: for block %s", ErrStateNotFound, hash)
	}

	s.best = hash
	return nil
}

// Best returns the hash of the best block. It returns the empty hash
// if no best block was set.
func (s *Store) Best() common.Hash {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.best
}

func (s *Store) get(hash common.Hash) (*entry, error) {
	value, ok := s.cache.Get(hash)
	if !ok {
		return nil, fmt.Errorf("%w: for block %s", ErrStateNotFound, hash)
	}
	return value.(*entry), nil
}
