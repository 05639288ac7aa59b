// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/beacon"
	"github.com/TarekkMA/nimbus/lib/nimbus/filter"
)

// FilterBuilder returns the conjunction of the configured policies,
// evaluated in the configured order.
func (c *Config) FilterBuilder() (filter.Builder, error) {
	builders := make([]filter.Builder, 0, len(c.Filter.Policies))
	for _, policy := range c.Filter.Policies {
		var builder filter.Builder
		switch policy {
		case PolicyAnyone:
			builder = filter.Anyone
		case PolicyActiveSet:
			builder = filter.ActiveSet
		case PolicyRoundRobin:
			builder = filter.RoundRobin
		case PolicyEligibleRatio:
			builder = filter.EligibleRatio
		case PolicyAllowlist:
			authors, err := c.allowlist()
			if err != nil {
				return nil, err
			}
			builder = filter.Allowlist(authors...)
		case PolicySlotRange:
			builder = filter.SlotRange(nimbus.Slot(c.Filter.SlotFrom), nimbus.Slot(c.Filter.SlotTo))
		default:
			return nil, fmt.Errorf("unknown filter policy: %s", policy)
		}
		builders = append(builders, builder)
	}

	return filter.AllOf(builders...), nil
}

// BeaconBuilder returns the builder of the configured slot beacon.
func (c *Config) BeaconBuilder() (beacon.Builder, error) {
	switch c.Beacon.Kind {
	case BeaconRelayChain:
		return beacon.RelayChainBuilder, nil
	case BeaconTimestamp:
		return beacon.TimestampBuilder(c.SlotDuration()), nil
	case BeaconFixed:
		return beacon.FixedBuilder(nimbus.Slot(c.Beacon.Slot)), nil
	default:
		return nil, fmt.Errorf("unknown beacon kind: %s", c.Beacon.Kind)
	}
}

func (c *Config) allowlist() (authors []nimbus.NimbusID, err error) {
	authors = make([]nimbus.NimbusID, len(c.Filter.Allowlist))
	for i, s := range c.Filter.Allowlist {
		authors[i], err = ParseNimbusID(s)
		if err != nil {
			return nil, fmt.Errorf("parsing allowlist entry %d: %w", i, err)
		}
	}
	return authors, nil
}

// ParseNimbusID parses a 0x prefixed hex encoded nimbus id.
func ParseNimbusID(s string) (id nimbus.NimbusID, err error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return id, err
	}
	return nimbus.NewNimbusID(b)
}
