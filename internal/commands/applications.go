package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/models"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Track your project applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your applications",
	Run: withView("applications", func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")

		var apps []models.Application
		var err error
		if status != "" {
			apps, err = client.ApplicationsByStatus(cmd.Context(), models.ApplicationStatus(strings.ToUpper(status)))
		} else {
			apps, err = client.ListApplications(cmd.Context())
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(apps) == 0 {
			fmt.Println("No applications found.")
			return
		}

		fmt.Printf("%-5s %-32s %-24s %s\n", "ID", "PROJECT", "STATUS", "APPLIED")
		fmt.Println(strings.Repeat("-", 76))
		for _, a := range apps {
			project := a.ProjectTitle
			if project == "" {
				project = fmt.Sprintf("#%d", a.ProjectID)
			}
			if len(project) > 30 {
				project = project[:27] + "..."
			}
			fmt.Printf("%-5d %-32s %-24s %s\n",
				a.ID, project, models.Label(a.Status), a.CreatedAt.Format("Jan 02, 2006"))
		}
	}),
}

var applicationsShowCmd = &cobra.Command{
	Use:   "show [application-id]",
	Short: "Show an application with its progress timeline",
	Args:  cobra.ExactArgs(1),
	Run: withView("applications", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid application ID '%s'\n", args[0])
			return
		}

		a, err := client.GetApplication(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		project := a.ProjectTitle
		if project == "" {
			project = fmt.Sprintf("project #%d", a.ProjectID)
		}
		fmt.Printf("Application #%d — %s\n", a.ID, project)
		fmt.Printf("Status: %s · Applied: %s\n", models.Label(a.Status), a.CreatedAt.Format("Jan 02, 2006"))
		if a.SignedAgreementAt != nil {
			fmt.Printf("Agreement signed: %s\n", a.SignedAgreementAt.Format("Jan 02, 2006"))
		}

		fmt.Println()
		renderTimeline(a.Status)

		if a.Status == models.Eligible {
			fmt.Println()
			fmt.Printf("🎉 You're eligible! Sign the agreement with 'lancer applications sign %d'\n", a.ID)
		}
		if a.AssessmentID != nil && !models.HasReached(a.Status, models.AssessmentCompleted) {
			fmt.Println()
			fmt.Printf("📝 Assessment pending: 'lancer assessments show %d'\n", *a.AssessmentID)
		}
	}),
}

// renderTimeline draws the milestone list, marking everything the
// current status has reached. Terminal statuses show as a dead end
// below an untouched timeline.
func renderTimeline(current models.ApplicationStatus) {
	fmt.Println("Timeline:")
	for _, milestone := range models.ApplicationProgress {
		mark := "○"
		if models.HasReached(current, milestone) {
			mark = "●"
		}
		cursor := ""
		if milestone == current {
			cursor = "  ← current"
		}
		fmt.Printf("  %s %s%s\n", mark, models.Label(milestone), cursor)
	}
	if models.ProgressIndex(current) < 0 {
		fmt.Printf("  ✖ %s\n", models.Label(current))
	}
}

var applicationsSignCmd = &cobra.Command{
	Use:   "sign [application-id]",
	Short: "Sign the work agreement for an eligible application",
	Args:  cobra.ExactArgs(1),
	Run: withView("applications", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid application ID '%s'\n", args[0])
			return
		}

		a, err := client.SignAgreement(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✍️  Agreement signed — application #%d is now %s\n", a.ID, models.Label(a.Status))
	}),
}

func init() {
	applicationsListCmd.Flags().StringP("status", "s", "", "Filter by status (e.g. ELIGIBLE, ACTIVE)")

	applicationsCmd.AddCommand(applicationsListCmd)
	applicationsCmd.AddCommand(applicationsShowCmd)
	applicationsCmd.AddCommand(applicationsSignCmd)
}
