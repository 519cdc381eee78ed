package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/afrisecure/ussd"
	"github.com/afrisecure/ussd/internal/cli"
	"github.com/afrisecure/ussd/internal/config"
	"github.com/afrisecure/ussd/internal/logging"
	"github.com/afrisecure/ussd/pkg/flows"
)

var dialCmd = &cobra.Command{
	Use:   "dial [flow]",
	Short: "Run an interactive USSD session on the terminal",
	Long:  `Dials into a flow (default: the router main menu) and loops screens on stdin/stdout, like a feature phone would. Type exit to end the session, reset to start over.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flowID := flows.FlowRouter
		if len(args) > 0 {
			flowID = args[0]
		}
		delay, _ := cmd.Flags().GetDuration("delay")
		packDir, _ := cmd.Flags().GetString("flow-pack")

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts := []ussd.Option{
			ussd.WithFlowOptions(flows.Options{ApprovalRate: cfg.ApprovalRate}),
			ussd.WithLogger(logging.New(logging.ParseLevel(cfg.LogLevel))),
		}
		if packDir == "" {
			packDir = cfg.FlowPackDir
		}
		if packDir != "" {
			packs, err := flows.LoadPackDir(packDir)
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

		dialer := &cli.Dialer{
			Engine:    svc.Engine,
			In:        os.Stdin,
			Out:       os.Stdout,
			AutoDelay: delay,
		}
		if err := dialer.Run(cmd.Context(), flowID); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dialCmd)
	dialCmd.Flags().Duration("delay", 2*time.Second, "Pause on interstitial screens")
	dialCmd.Flags().String("flow-pack", "", "Directory of YAML flow packs to register")
}
