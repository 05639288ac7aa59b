// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/TarekkMA/nimbus/internal/metrics"
	"github.com/TarekkMA/nimbus/lib/common"
	"github.com/TarekkMA/nimbus/lib/nimbus"
)

// AuthorFilterAPI predicts whether an author will be eligible, without
// executing a block. Implementations never touch chain state or notify the
// event handler, and are safe for concurrent use. The only effect of a query
// is the pre-check counter of the runtime metrics recorder.
type AuthorFilterAPI interface {
	CanAuthor(author nimbus.NimbusID, relayParent nimbus.Slot) bool
}

type authorFilterAPI struct {
	filter  nimbus.CanAuthor
	metrics metrics.Recorder
}

// AuthorFilterAPI returns the eligibility query bound to the state of the
// block at, usually the block the caller is about to build on. The relay
// parent given to CanAuthor is evaluated as the slot by the same filter
// ExecuteBlock uses, so a query answering false for a state guarantees the
// full check of a block built on that state, at that slot, fails too.
func (r *Runtime) AuthorFilterAPI(at common.Hash) (AuthorFilterAPI, error) {
	view, err := r.store.View(at)
	if err != nil {
		return nil, fmt.Errorf("resolving state at %s: %w", at, err)
	}

	return &authorFilterAPI{
		filter:  r.filter(view),
		metrics: r.metrics,
	}, nil
}

func (a *authorFilterAPI) CanAuthor(author nimbus.NimbusID, relayParent nimbus.Slot) bool {
	eligible := a.filter.CanAuthor(author, relayParent)
	a.metrics.Precheck(eligible)
	return eligible
}
