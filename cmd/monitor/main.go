// Package main is the entry point for the monitor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags, e.g.
// go build -ldflags "-X main.version=1.0.0"
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "monitor",
	Short: "HTTP endpoint availability monitor",
	Long: `monitor probes a set of HTTP endpoints every 15 seconds, classifies
each probe as UP or DOWN (UP means a 2xx response in under 500ms), and
reports cumulative availability per endpoint and per domain every 15
seconds.

Endpoints are described in a YAML file:

  - name: fetch index page
    url: https://fetch.com/
  - name: fetch careers page
    url: https://fetch.com/careers
    method: POST
    headers:
      content-type: application/json
    body: '{"foo": "bar"}'`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("monitor", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
