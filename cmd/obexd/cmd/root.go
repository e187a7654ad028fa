// Package cmd implements the obexd command-line entry points: printing
// the effective consensus configuration and driving the in-memory slot
// pipeline for local inspection. obexd does not run a network node; it
// is operator/developer tooling around the consensus packages.
package cmd

import (
	"fmt"
	"os"

	"github.com/obexchain/obex-core/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version and Commit are set by main from build-time variables.
var (
	Version string
	Commit  string
)

var cfgFile string

// rootCmd represents the base obexd command.
var rootCmd = &cobra.Command{
	Use:   "obexd",
	Short: "obexd inspects and drives the OBEX.alpha consensus engine",
	Long: `obexd is a developer tool around the OBEX.alpha consensus packages:
it prints the effective network configuration and can drive the
in-memory slot pipeline for local inspection. It is not a network node.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in mainnet defaults)")
}

// initConfig reads in a config file, if one was given, layering it over
// the built-in defaults via viper the way the teacher's own (currently
// disabled) server config loader does.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "obexd: failed to read config %s: %v\n", cfgFile, err)
		}
	}
}

// loadConfig returns the effective Config: built-in defaults with any
// fields present in the config file overlaid on top.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		if err := viper.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("obexd: failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
