package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an endpoints file without starting the monitor",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("config", "c", "", "path to the endpoints YAML file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	endpoints, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid: %d endpoint(s)\n", cfgPath, len(endpoints))
	for _, ep := range endpoints {
		fmt.Printf("  %s %s (%s, domain %s)\n", ep.Method, ep.URL, ep.Name, ep.Domain())
	}
	return nil
}
