// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

//go:generate mockgen -destination=mock_event_handler_test.go -package $GOPACKAGE github.com/TarekkMA/nimbus/lib/nimbus EventHandler
//go:generate mockgen -destination=mock_recorder_test.go -package $GOPACKAGE github.com/TarekkMA/nimbus/internal/metrics Recorder
