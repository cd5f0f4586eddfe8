package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abfahrt",
	Short: "A voice-enabled RMV journey assistant",
	Long: `abfahrt answers "when does my train leave" questions against the RMV
open-data API: it resolves a spoken or typed destination to a station, asks
for the next connection from your configured home station and renders the
answer as a spoken German sentence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
