package main

import (
	"os"

	"github.com/AvengeMedia/dankdetect/internal/log"
	"github.com/spf13/cobra"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "dankdetect",
	Short:   "Detect the current desktop environment",
	Long:    "Detect which desktop environment the current session runs under, using the platform on Windows/macOS and XDG_CURRENT_DESKTOP everywhere else",
	Version: Version,
	Run:     runDetect,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().Bool("json", false, "Print the result as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
