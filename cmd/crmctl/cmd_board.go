package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/brunovtr/pipecrm/internal/board"
)

var boardCmd = &cobra.Command{
	Use:       "board [leads|orders]",
	Short:     "Render a kanban board in the terminal",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"leads", "orders"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "leads":
			return renderLeadBoard(cmd)
		case "orders":
			return renderOrderBoard(cmd)
		default:
			return fmt.Errorf("unknown board %q", args[0])
		}
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show pipeline totals per stage and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := apiClient().Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(os.Stdout)
		table.Header("Pipeline", "Bucket", "Count")
		for _, b := range summary.LeadsByStage {
			table.Append("leads", b.Name, strconv.Itoa(b.Count))
		}
		for _, b := range summary.OrdersByStatus {
			table.Append("orders", b.Name, strconv.Itoa(b.Count))
		}
		table.Render()

		fmt.Printf("%d leads, %d orders\n", summary.TotalLeads, summary.TotalOrders)
		return nil
	},
}

func renderLeadBoard(cmd *cobra.Command) error {
	b := board.NewLeadBoard(apiClient())
	if err := b.Load(cmd.Context()); err != nil {
		return err
	}

	for _, col := range b.Columns() {
		fmt.Printf("== %s (%d)\n", col.Stage, len(col.Leads))
		for _, l := range col.Leads {
			fmt.Printf("   #%-4d %s <%s>\n", l.ID, l.Name, l.Contact)
		}
	}
	return nil
}

func renderOrderBoard(cmd *cobra.Command) error {
	b := board.NewOrderBoard(apiClient())
	if err := b.Load(cmd.Context()); err != nil {
		return err
	}

	for _, col := range b.Columns() {
		fmt.Printf("== %s (%d)\n", col.Status, len(col.Orders))
		for _, o := range col.Orders {
			fmt.Printf("   #%-4d lead %s\n", o.ID, orDash(o.LeadName))
		}
	}
	return nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
