// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import "errors"

var (
	// ErrUnknownParent is returned when executing a block whose parent state is not held.
	ErrUnknownParent = errors.New("unknown parent")

	// ErrBlockAlreadyExecuted is returned when executing a block a second time.
	ErrBlockAlreadyExecuted = errors.New("block already executed")

	// ErrInvalidBlockNumber is returned when a block number does not follow its parent's.
	ErrInvalidBlockNumber = errors.New("block number does not follow parent")

	// ErrCannotBeAuthor is returned when the author of a block is not eligible in its slot.
	ErrCannotBeAuthor = errors.New("author is not eligible")
)
