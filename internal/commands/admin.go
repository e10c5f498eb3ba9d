package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer users, projects and applications",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform accounts",
	Run: withView("admin/users", func(cmd *cobra.Command, args []string) {
		users, err := client.ListUsers(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("%-5s %-24s %-30s %-12s %s\n", "ID", "NAME", "EMAIL", "ROLE", "STATUS")
		fmt.Println(strings.Repeat("-", 84))
		for _, u := range users {
			fmt.Printf("%-5d %-24s %-30s %-12s %s\n",
				u.ID, u.Name, u.Email, models.Label(u.Role), models.Label(u.Status))
		}
	}),
}

var adminUserStatusCmd = &cobra.Command{
	Use:   "user-status [user-id] [status]",
	Short: "Suspend or reactivate an account",
	Args:  cobra.ExactArgs(2),
	Run: withView("admin/users", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid user ID '%s'\n", args[0])
			return
		}

		u, err := client.UpdateUserStatus(cmd.Context(), id, models.UserStatus(strings.ToUpper(args[1])))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ %s is now %s\n", u.Email, models.Label(u.Status))
	}),
}

var adminProjectCreateCmd = &cobra.Command{
	Use:   "project-create",
	Short: "Post a new project",
	Run: withView("admin/projects", func(cmd *cobra.Command, args []string) {
		req, ok := projectRequestFromFlags(cmd)
		if !ok {
			return
		}

		p, err := client.CreateProject(cmd.Context(), req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Project #%d created: %s\n", p.ID, p.Title)
	}),
}

var adminProjectUpdateCmd = &cobra.Command{
	Use:   "project-update [project-id]",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	Run: withView("admin/projects", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		req, ok := projectRequestFromFlags(cmd)
		if !ok {
			return
		}

		p, err := client.UpdateProject(cmd.Context(), id, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Project #%d updated\n", p.ID)
	}),
}

var adminProjectDeleteCmd = &cobra.Command{
	Use:   "project-delete [project-id]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	Run: withView("admin/projects", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		if err := client.DeleteProject(cmd.Context(), id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Project #%d deleted\n", id)
	}),
}

var adminApplicationsCmd = &cobra.Command{
	Use:   "applications [project-id]",
	Short: "Review applications for a project",
	Args:  cobra.ExactArgs(1),
	Run: withView("admin/projects", func(cmd *cobra.Command, args []string) {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		apps, err := client.ProjectApplications(cmd.Context(), projectID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(apps) == 0 {
			fmt.Println("No applications for this project.")
			return
		}

		fmt.Printf("%-5s %-24s %-30s %s\n", "ID", "APPLICANT", "EMAIL", "STATUS")
		fmt.Println(strings.Repeat("-", 80))
		for _, a := range apps {
			fmt.Printf("%-5d %-24s %-30s %s\n", a.ID, a.UserName, a.UserEmail, models.Label(a.Status))
		}
	}),
}

var adminAppStatusCmd = &cobra.Command{
	Use:   "application-status [application-id] [status]",
	Short: "Move an application to a new status",
	Args:  cobra.ExactArgs(2),
	Run: withView("admin/projects", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid application ID '%s'\n", args[0])
			return
		}

		a, err := client.UpdateApplicationStatus(cmd.Context(), id, models.ApplicationStatus(strings.ToUpper(args[1])))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Application #%d is now %s\n", a.ID, models.Label(a.Status))
	}),
}

// projectRequestFromFlags reads the shared project flags, validating
// before anything leaves the machine.
func projectRequestFromFlags(cmd *cobra.Command) (models.ProjectRequest, bool) {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	sow, _ := cmd.Flags().GetString("sow")
	projectType, _ := cmd.Flags().GetString("type")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	payout, _ := cmd.Flags().GetFloat64("payout")
	cycle, _ := cmd.Flags().GetInt("billing-cycle")
	duration, _ := cmd.Flags().GetInt("duration")
	crmURL, _ := cmd.Flags().GetString("crm-url")

	req := models.ProjectRequest{
		Title:            title,
		Description:      description,
		StatementOfWork:  sow,
		ProjectType:      models.ProjectType(strings.ToUpper(projectType)),
		MinScore:         minScore,
		PayoutAmount:     payout,
		BillingCycleDays: cycle,
		CRMProvided:      crmURL != "",
		CRMURL:           crmURL,
	}
	if duration > 0 {
		req.DurationDays = &duration
	}

	if err := validate.Struct(req); err != nil {
		fmt.Printf("Error: %v\n", err)
		return models.ProjectRequest{}, false
	}
	return req, true
}

func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Project title")
	cmd.Flags().String("description", "", "Short description")
	cmd.Flags().String("sow", "", "Statement of work")
	cmd.Flags().String("type", "", "Project type (e.g. DEVELOPMENT)")
	cmd.Flags().Float64("min-score", 0, "Minimum assessment score")
	cmd.Flags().Float64("payout", 0, "Payout per billing cycle")
	cmd.Flags().Int("billing-cycle", 30, "Billing cycle length in days")
	cmd.Flags().Int("duration", 0, "Project duration in days")
	cmd.Flags().String("crm-url", "", "CRM URL when access is provided")
}

func init() {
	addProjectFlags(adminProjectCreateCmd)
	addProjectFlags(adminProjectUpdateCmd)

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminUserStatusCmd)
	adminCmd.AddCommand(adminProjectCreateCmd)
	adminCmd.AddCommand(adminProjectUpdateCmd)
	adminCmd.AddCommand(adminProjectDeleteCmd)
	adminCmd.AddCommand(adminApplicationsCmd)
	adminCmd.AddCommand(adminAppStatusCmd)
}
