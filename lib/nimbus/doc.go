// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package nimbus holds the primitive types and interfaces of the nimbus
// consensus framework: author identifiers and signatures, the slot beacon,
// the CanAuthor filter and its composition, and the author event handler.
//
// Filters decide eligibility, they do not produce or verify blocks. The same
// filter is evaluated both by the runtime when executing a block and by nodes
// asking ahead of time whether they may author.
package nimbus
