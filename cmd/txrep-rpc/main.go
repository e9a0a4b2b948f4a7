package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellar/txrep/cmd/txrep-rpc/internal/config"
	"github.com/stellar/txrep/cmd/txrep-rpc/internal/daemon"
	supportlog "github.com/stellar/txrep/support/log"
)

func main() {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "txrep-rpc",
		Short: "Start the txrep RPC server",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cfg.SetValues(os.LookupEnv); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			daemon.MustNew(&cfg, supportlog.New()).Run()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and exit",
		Run: func(_ *cobra.Command, _ []string) {
			if config.CommitHash == "" {
				fmt.Printf("txrep-rpc dev\n")
			} else {
				fmt.Printf("txrep-rpc %s (%s) built at %s\n", config.Version, config.CommitHash, config.BuildTimestamp)
			}
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := cfg.AddFlags(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
