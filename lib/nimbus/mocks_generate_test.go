// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nimbus

//go:generate mockgen -destination=mock_nimbus_test.go -package $GOPACKAGE . CanAuthor,EventHandler
