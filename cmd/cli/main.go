package main

import (
	"os"

	"github.com/probekit/cpu-affinity/pkg/config"
	"github.com/probekit/cpu-affinity/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load("")
	logger.Setup(cfg.LogLevel, os.Stderr)

	rootCmd := &cobra.Command{
		Use:   "cpu-affinity",
		Short: "Query the calling process's CPU affinity",
	}

	rootCmd.AddCommand(newCountCmd(cfg))
	rootCmd.AddCommand(newMaskCmd())
	rootCmd.AddCommand(newInfoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
