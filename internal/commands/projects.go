package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/api"
	"github.com/lancerhq/lancer/internal/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse and apply to projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open projects",
	Run: withView("projects", func(cmd *cobra.Command, args []string) {
		projectType, _ := cmd.Flags().GetString("type")
		eligibleOnly, _ := cmd.Flags().GetBool("eligible")

		projects, err := client.ListProjects(cmd.Context(), api.ProjectFilter{
			Type:         models.ProjectType(strings.ToUpper(projectType)),
			EligibleOnly: eligibleOnly,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return
		}

		fmt.Printf("%-5s %-36s %-18s %-10s %-8s %s\n", "ID", "TITLE", "TYPE", "PAYOUT", "MIN", "STATUS")
		fmt.Println(strings.Repeat("-", 88))
		for _, p := range projects {
			title := p.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			fmt.Printf("%-5d %-36s %-18s %-10.2f %-8.1f %s\n",
				p.ID, title, models.Label(p.ProjectType), p.PayoutAmount, p.MinScore, models.Label(p.Status))
		}
	}),
}

var projectsShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project in full",
	Args:  cobra.ExactArgs(1),
	Run: withView("projects", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		p, err := client.GetProject(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("#%d %s [%s]\n", p.ID, p.Title, models.Label(p.Status))
		fmt.Printf("Type: %s · Payout: %.2f per %d-day cycle · Min score: %.1f\n",
			models.Label(p.ProjectType), p.PayoutAmount, p.BillingCycleDays, p.MinScore)
		if p.DurationDays != nil {
			fmt.Printf("Duration: %d days\n", *p.DurationDays)
		}
		if p.CRMProvided {
			fmt.Println("CRM access provided")
		}
		if p.Description != "" {
			fmt.Printf("\n%s\n", p.Description)
		}
		if p.StatementOfWork != "" {
			fmt.Printf("\nStatement of work:\n%s\n", p.StatementOfWork)
		}
	}),
}

var projectsApplyCmd = &cobra.Command{
	Use:   "apply [project-id]",
	Short: "Apply to a project",
	Args:  cobra.ExactArgs(1),
	Run: withView("projects", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		applicationID, err := client.ApplyToProject(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Applied to project #%d — application #%d\n", id, applicationID)
		fmt.Printf("   Track it with 'lancer applications show %d'\n", applicationID)
	}),
}

func init() {
	projectsListCmd.Flags().StringP("type", "t", "", "Filter by project type (e.g. DEVELOPMENT, DESIGN)")
	projectsListCmd.Flags().BoolP("eligible", "e", false, "Only projects you're eligible for")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsApplyCmd)
}
