package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afrisecure/ussd"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ussd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ussd version %s\n", ussd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
