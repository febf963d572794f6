package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is printed by `chip8go version`.
const currentReleaseVersion = "v0.1.0"

// versionCmd returns the caller's installed chip8go version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "retrieve the currently installed chip8go version",
	Long:  "Run `chip8go version` to get your current chip8go version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(currentReleaseVersion)
	},
}
