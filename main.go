package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = "dev"

var (
	configFile string
	portFlag   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dealership HTTP API",
		RunE:  runServe,
	}

	rootCmd := &cobra.Command{
		Use:           "dealership-api",
		Short:         "Dealership management API for brands, owners and cars",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "listen port, overrides PORT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dealership-api %s\n", version)
		},
	})
	return rootCmd
}
