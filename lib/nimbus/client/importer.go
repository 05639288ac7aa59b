// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"fmt"

	"github.com/TarekkMA/nimbus/lib/nimbus/beacon"
	"github.com/TarekkMA/nimbus/lib/nimbus/digest"
	"github.com/TarekkMA/nimbus/lib/nimbus/runtime"
)

// BlockExecutor runs the full authorship check of an unsealed block.
type BlockExecutor interface {
	ExecuteBlock(header *digest.Header, ctx beacon.BlockContext) (*runtime.Outcome, error)
}

// Importer imports sealed blocks.
type Importer struct {
	executor BlockExecutor
}

// NewImporter creates an importer executing blocks with the executor.
func NewImporter(executor BlockExecutor) *Importer {
	return &Importer{
		executor: executor,
	}
}

// ImportBlock verifies the seal of the header, strips it and runs the
// full authorship check on the unsealed header.
func (i *Importer) ImportBlock(header *digest.Header, ctx beacon.BlockContext) (*runtime.Outcome, error) {
	unsealed, author, err := digest.VerifySeal(header)
	if err != nil {
		logger.Debugf("rejected block %s: %s", header, err)
		return nil, fmt.Errorf("verifying seal: %w", err)
	}

	outcome, err := i.executor.ExecuteBlock(unsealed, ctx)
	if err != nil {
		logger.Debugf("rejected block %s by %s: %s", unsealed, author, err)
		return nil, fmt.Errorf("executing block: %w", err)
	}

	logger.Infof("imported block %s authored by %s at slot %d", outcome.Hash, outcome.Author, outcome.Slot)
	return outcome, nil
}
