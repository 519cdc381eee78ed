package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afrisecure/ussd"
	"github.com/afrisecure/ussd/internal/config"
	"github.com/afrisecure/ussd/pkg/flows"
)

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List registered flows",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		var opts []ussd.Option
		if cfg.FlowPackDir != "" {
			packs, err := flows.LoadPackDir(cfg.FlowPackDir)
			if err != nil {
				fmt.Printf("Error loading flow packs: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, ussd.WithFlows(packs...))
		}

		svc, err := ussd.New(opts...)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Registered flows:")
		for _, id := range svc.Registry.IDs() {
			fmt.Println("- " + id)
		}
	},
}

func init() {
	rootCmd.AddCommand(flowsCmd)
}
