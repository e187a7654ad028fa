package cmd

import (
	"math/big"

	"github.com/davecgh/go-spew/spew"
	"github.com/obexchain/obex-core/harness"
	"github.com/spf13/cobra"
)

// inspectCmd runs a single slot of the harness pipeline and dumps the
// resulting header, tickets, and settlement transactions in full via
// go-spew, for debugging field values a table can't show at a glance.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run one slot of the pipeline and dump the full result",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := harness.NewPipeline(nil, big.NewInt(0))
		res, err := p.RunSlot(nil, nil, nil)
		if err != nil {
			return err
		}
		spew.Dump(res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
