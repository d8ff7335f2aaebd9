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

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Work with sales leads",
}

var (
	leadStageFilter    string
	leadFollowUpBefore string
)

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		leads, err := apiClient().ListLeads(cmd.Context(), leadStageFilter, leadFollowUpBefore)
		if err != nil {
			return err
		}
		renderLeads(leads)
		return nil
	},
}

var leadForm struct {
	name            string
	contact         string
	company         string
	productInterest string
	stage           string
	followUpDate    string
}

var leadsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		lead, err := apiClient().CreateLead(cmd.Context(), usecase.CreateLeadInput{
			Name:            leadForm.name,
			Contact:         leadForm.contact,
			Company:         leadForm.company,
			ProductInterest: leadForm.productInterest,
			Stage:           leadForm.stage,
			FollowUpDate:    leadForm.followUpDate,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created lead #%d (%s)\n", lead.ID, lead.Stage)
		return nil
	},
}

var leadsMoveCmd = &cobra.Command{
	Use:   "move <id> <stage>",
	Short: "Move a lead to another pipeline stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lead id %q", args[0])
		}

		lead, err := apiClient().UpdateLead(cmd.Context(), id, usecase.UpdateLeadInput{Stage: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("lead #%d is now %s\n", lead.ID, lead.Stage)
		return nil
	},
}

func renderLeads(leads []entity.Lead) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "Name", "Contact", "Company", "Stage", "Follow-up")
	for _, l := range leads {
		table.Append(
			strconv.FormatInt(l.ID, 10),
			l.Name,
			l.Contact,
			orDash(l.Company),
			l.Stage,
			formatDate(l.FollowUpDate),
		)
	}
	table.Render()
}

func init() {
	leadsListCmd.Flags().StringVar(&leadStageFilter, "stage", "", "only leads in this stage")
	leadsListCmd.Flags().StringVar(&leadFollowUpBefore, "follow-up-before", "", "only leads due on or before this date (YYYY-MM-DD)")

	leadsAddCmd.Flags().StringVar(&leadForm.name, "name", "", "lead name (required)")
	leadsAddCmd.Flags().StringVar(&leadForm.contact, "contact", "", "phone or email (required)")
	leadsAddCmd.Flags().StringVar(&leadForm.company, "company", "", "company")
	leadsAddCmd.Flags().StringVar(&leadForm.productInterest, "product", "", "product interest")
	leadsAddCmd.Flags().StringVar(&leadForm.stage, "stage", "New", "initial pipeline stage")
	leadsAddCmd.Flags().StringVar(&leadForm.followUpDate, "follow-up", "", "follow-up date (YYYY-MM-DD)")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsAddCmd)
	leadsCmd.AddCommand(leadsMoveCmd)
}
