package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunovtr/pipecrm/internal/board"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "Terminal client for the pipecrm API",
	Long: `crmctl drives the CRM from the terminal: list and move leads through
the sales pipeline, track orders through fulfillment, and render the
kanban boards and dashboard summary.`,
}

func apiClient() *board.Client {
	return board.NewClient(apiURL)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "base URL of the pipecrm API")

	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(dashboardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
