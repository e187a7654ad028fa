// Package config holds the network-versioned consensus constants for
// every OBEX.α subsystem, gathered into one struct so that a
// deployment's parameters can be loaded, validated, and printed in one
// place, the way the teacher's own Config aggregates proving
// parameters.
package config

import (
	"fmt"

	"github.com/obexchain/obex-core/tokenomics"
)

// Config is the full set of tunable consensus parameters. Fields are
// grouped by subsystem and tagged for mapstructure so viper can
// unmarshal them; cmd/obexd overlays them from a config file.
type Config struct {
	// α-I participation
	LabelBytes     int    `mapstructure:"label_bytes"`
	NLabels        uint64 `mapstructure:"n_labels"`
	Passes         int    `mapstructure:"passes"`
	ChallengesQ    int    `mapstructure:"challenges_q"`
	PartVersion    uint32 `mapstructure:"part_version"`
	MaxPartRecSize int    `mapstructure:"max_partrec_size"`

	// α-II header
	HeaderVersion uint32 `mapstructure:"header_version"`
	MaxPiLen      int    `mapstructure:"max_pi_len"`
	MaxEllLen     int    `mapstructure:"max_ell_len"`

	// α-III admission
	FlatFeeUobx   uint64 `mapstructure:"flat_fee_uobx"`
	FeePercentDen uint64 `mapstructure:"fee_percent_den"`

	// α-T tokenomics
	HalvingSlots     uint64 `mapstructure:"halving_slots"`
	TerminalHalvings int    `mapstructure:"terminal_halvings"`
	NlbEpochSlots    uint64 `mapstructure:"nlb_epoch_slots"`
	DrpK             int    `mapstructure:"drp_k"`
}

// DefaultConfig returns the canonical OBEX.α mainnet parameter set.
func DefaultConfig() *Config {
	const mib = 1 << 20
	return &Config{
		LabelBytes:     32,
		NLabels:        (512 * mib) / 32,
		Passes:         3,
		ChallengesQ:    96,
		PartVersion:    1,
		MaxPartRecSize: 600_000,

		HeaderVersion: 2,
		MaxPiLen:      1 << 20,
		MaxEllLen:     1 << 16,

		FlatFeeUobx:   10,
		FeePercentDen: 100,

		HalvingSlots:     tokenomics.SlotsPerHalving,
		TerminalHalvings: 20,
		NlbEpochSlots:    tokenomics.NlbEpochSlots,
		DrpK:             tokenomics.MaxDrpWinners,
	}
}

// Validate rejects parameter combinations that would break a
// consensus-critical invariant elsewhere in the protocol (fixed Q,
// positive label counts, a non-degenerate epoch length).
func (c *Config) Validate() error {
	if c.LabelBytes != 32 {
		return fmt.Errorf("config: label_bytes must be 32, got %d", c.LabelBytes)
	}
	if c.NLabels == 0 {
		return fmt.Errorf("config: n_labels must be positive")
	}
	if c.Passes <= 0 {
		return fmt.Errorf("config: passes must be positive")
	}
	if c.ChallengesQ != 96 {
		return fmt.Errorf("config: challenges_q must be 96, got %d", c.ChallengesQ)
	}
	if c.MaxPartRecSize <= 0 {
		return fmt.Errorf("config: max_partrec_size must be positive")
	}
	if c.MaxPiLen <= 0 || c.MaxEllLen <= 0 {
		return fmt.Errorf("config: max_pi_len and max_ell_len must be positive")
	}
	if c.FeePercentDen == 0 {
		return fmt.Errorf("config: fee_percent_den must be positive")
	}
	if c.TerminalHalvings <= 0 {
		return fmt.Errorf("config: terminal_halvings must be positive")
	}
	if c.HalvingSlots == 0 {
		return fmt.Errorf("config: halving_slots must be positive")
	}
	if c.NlbEpochSlots == 0 {
		return fmt.Errorf("config: nlb_epoch_slots must be positive")
	}
	if c.DrpK <= 0 {
		return fmt.Errorf("config: drp_k must be positive")
	}
	return nil
}
