package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/brunovtr/pipecrm/internal/entity"
	"github.com/brunovtr/pipecrm/internal/usecase"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Work with fulfillment orders",
}

var orderStatusFilter string

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders with their lead, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := apiClient().ListOrders(cmd.Context(), orderStatusFilter)
		if err != nil {
			return err
		}
		renderOrders(orders)
		return nil
	},
}

var orderForm struct {
	leadID         int64
	status         string
	courier        string
	trackingNumber string
}

var ordersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an order for an existing lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := apiClient().CreateOrder(cmd.Context(), usecase.CreateOrderInput{
			LeadID:         orderForm.leadID,
			Status:         orderForm.status,
			Courier:        orderForm.courier,
			TrackingNumber: orderForm.trackingNumber,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created order #%d for lead #%d (%s)\n", order.ID, order.LeadID, order.Status)
		return nil
	},
}

var ordersMoveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move an order to another fulfillment status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		order, err := apiClient().UpdateOrder(cmd.Context(), id, usecase.UpdateOrderInput{Status: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("order #%d is now %s\n", order.ID, order.Status)
		return nil
	},
}

var shipForm struct {
	courier        string
	trackingNumber string
}

var ordersShipCmd = &cobra.Command{
	Use:   "ship <id>",
	Short: "Mark an order dispatched with courier and tracking details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		order, err := apiClient().UpdateOrder(cmd.Context(), id, usecase.UpdateOrderInput{
			Status:         entity.StatusDispatched,
			Courier:        shipForm.courier,
			TrackingNumber: shipForm.trackingNumber,
		})
		if err != nil {
			return err
		}
		fmt.Printf("order #%d dispatched via %s\n", order.ID, orDash(order.Courier))
		return nil
	},
}

func renderOrders(orders []entity.Order) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "Lead", "Contact", "Status", "Courier", "Tracking")
	for _, o := range orders {
		table.Append(
			strconv.FormatInt(o.ID, 10),
			orDash(o.LeadName),
			orDash(o.LeadContact),
			o.Status,
			orDash(o.Courier),
			orDash(o.TrackingNumber),
		)
	}
	table.Render()
}

func init() {
	ordersListCmd.Flags().StringVar(&orderStatusFilter, "status", "", "only orders in this status")

	ordersAddCmd.Flags().Int64Var(&orderForm.leadID, "lead", 0, "lead id the order belongs to (required)")
	ordersAddCmd.Flags().StringVar(&orderForm.status, "status", entity.StatusReceived, "initial fulfillment status")
	ordersAddCmd.Flags().StringVar(&orderForm.courier, "courier", "", "courier")
	ordersAddCmd.Flags().StringVar(&orderForm.trackingNumber, "tracking", "", "tracking number")

	ordersShipCmd.Flags().StringVar(&shipForm.courier, "courier", "", "courier")
	ordersShipCmd.Flags().StringVar(&shipForm.trackingNumber, "tracking", "", "tracking number")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersAddCmd)
	ordersCmd.AddCommand(ordersMoveCmd)
	ordersCmd.AddCommand(ordersShipCmd)
}
