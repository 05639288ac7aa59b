// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config decodes and validates the TOML configuration of the
// nimbus authorship checks.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"

	"github.com/TarekkMA/nimbus/internal/log"
	"github.com/TarekkMA/nimbus/lib/nimbus"
	"github.com/TarekkMA/nimbus/lib/nimbus/state"
)

// Filter policies, composed in the configured order.
const (
	PolicyAnyone        = "anyone"
	PolicyActiveSet     = "active-set"
	PolicyRoundRobin    = "round-robin"
	PolicyEligibleRatio = "eligible-ratio"
	PolicyAllowlist     = "allowlist"
	PolicySlotRange     = "slot-range"
)

// Beacon kinds.
const (
	BeaconRelayChain = "relay-chain"
	BeaconTimestamp  = "timestamp"
	BeaconFixed      = "fixed"
)

// Config is the nimbus configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Filter FilterConfig `toml:"filter"`
	Beacon BeaconConfig `toml:"beacon"`
	State  StateConfig  `toml:"state"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `toml:"level" validate:"required"`
}

// FilterConfig is the author filter configuration.
type FilterConfig struct {
	Policies  []string `toml:"policies" validate:"dive,oneof=anyone active-set round-robin eligible-ratio allowlist slot-range"` //nolint:lll
	Allowlist []string `toml:"allowlist" validate:"dive,hexadecimal,len=66"`
	SlotFrom  uint32   `toml:"slot-from"`
	SlotTo    uint32   `toml:"slot-to" validate:"gtefield=SlotFrom"`
}

// BeaconConfig is the slot beacon configuration.
type BeaconConfig struct {
	Kind           string `toml:"kind" validate:"oneof=relay-chain timestamp fixed"`
	SlotDurationMs uint64 `toml:"slot-duration-ms" validate:"required_if=Kind timestamp"`
	Slot           uint32 `toml:"slot"`
}

// StateConfig is the snapshot store configuration.
type StateConfig struct {
	Retained int `toml:"retained" validate:"gt=0"`
}

// Default returns the default configuration, where anyone may author
// and the slot is the relay parent number.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: log.Info.String(),
		},
		Filter: FilterConfig{
			Policies: []string{PolicyAnyone},
			SlotTo:   uint32(nimbus.MaxSlot),
		},
		Beacon: BeaconConfig{
			Kind:           BeaconRelayChain,
			SlotDurationMs: 6000,
		},
		State: StateConfig{
			Retained: state.DefaultRetained,
		},
	}
}

// Decode decodes the TOML configuration from the reader on top of the
// default configuration, and validates it.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	_, err = c.LogLevel()
	if err != nil {
		return err
	}

	_, err = c.allowlist()
	return err
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("parsing log level: %w", err)
	}
	return level, nil
}

// SlotDuration returns the configured slot duration.
func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.Beacon.SlotDurationMs) * time.Millisecond
}
