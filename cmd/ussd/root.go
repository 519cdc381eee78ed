package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ussd",
	Short: "AfriSecure USSD menu engine",
	Long:  `ussd runs the AfriSecure Finance feature-phone menus: a gateway-style HTTP server, an interactive dialer, and session administration.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
