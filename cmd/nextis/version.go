// Version command for the nextis CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the release version baked into the binary.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nextis version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nextis", version)
	},
}
