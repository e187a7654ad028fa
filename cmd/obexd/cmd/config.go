package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// configCmd prints the effective consensus configuration as a table.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective consensus configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"parameter", "value"})
		table.SetBorder(true)
		table.AppendBulk([][]string{
			{"label_bytes", fmt.Sprint(cfg.LabelBytes)},
			{"n_labels", fmt.Sprint(cfg.NLabels)},
			{"passes", fmt.Sprint(cfg.Passes)},
			{"challenges_q", fmt.Sprint(cfg.ChallengesQ)},
			{"part_version", fmt.Sprint(cfg.PartVersion)},
			{"max_partrec_size", fmt.Sprint(cfg.MaxPartRecSize)},
			{"header_version", fmt.Sprint(cfg.HeaderVersion)},
			{"max_pi_len", fmt.Sprint(cfg.MaxPiLen)},
			{"max_ell_len", fmt.Sprint(cfg.MaxEllLen)},
			{"flat_fee_uobx", fmt.Sprint(cfg.FlatFeeUobx)},
			{"fee_percent_den", fmt.Sprint(cfg.FeePercentDen)},
			{"halving_slots", fmt.Sprint(cfg.HalvingSlots)},
			{"terminal_halvings", fmt.Sprint(cfg.TerminalHalvings)},
			{"nlb_epoch_slots", fmt.Sprint(cfg.NlbEpochSlots)},
			{"drp_k", fmt.Sprint(cfg.DrpK)},
		})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
