package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/access"
	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/timer"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your activity at a glance",
	Run: withView(access.HomeRoute, func(cmd *cobra.Command, args []string) {
		renderDashboard(cmd.Context())
	}),
}

// renderDashboard prints the home view: who you are, today's hours,
// the running session and your applications broken down by status.
// Each fetch fails independently; one broken endpoint doesn't blank
// the whole screen.
func renderDashboard(ctx context.Context) {
	sess := store.Current()
	if sess == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("📋 Dashboard — %s (%s)\n\n", sess.Name, models.Label(sess.Role))

	if hours, err := client.TodayHours(ctx); err == nil {
		fmt.Printf("⏱  Hours today: %.2f\n", hours)
	} else {
		fmt.Printf("⏱  Hours today: unavailable (%v)\n", err)
	}

	if active, err := client.ActiveWorkSession(ctx); err == nil {
		if active != nil {
			elapsed := timer.Format(nowSince(active))
			fmt.Printf("▶️  Active session on %s — %s elapsed\n", projectRef(active), elapsed)
		} else {
			fmt.Println("▶️  No active work session")
		}
	}

	apps, err := client.ListApplications(ctx)
	if err != nil {
		fmt.Printf("📄 Applications: unavailable (%v)\n", err)
		return
	}
	if len(apps) == 0 {
		fmt.Println("📄 No applications yet. Browse projects with 'lancer projects'.")
		return
	}

	counts := make(map[models.ApplicationStatus]int)
	for _, a := range apps {
		counts[a.Status]++
	}
	fmt.Printf("📄 Applications (%d):\n", len(apps))
	for _, s := range models.ApplicationProgress {
		if counts[s] > 0 {
			fmt.Printf("   %-24s %d\n", models.Label(s), counts[s])
		}
	}
	for _, s := range []models.ApplicationStatus{models.ApplicationRejected, models.ApplicationCancelled} {
		if counts[s] > 0 {
			fmt.Printf("   %-24s %d\n", models.Label(s), counts[s])
		}
	}
}
