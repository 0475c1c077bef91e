package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/ishikawa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ishikawa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ishikawa version %s\n", strings.TrimSpace(ishikawa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
