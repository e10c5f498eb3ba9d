package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/timer"
	"github.com/lancerhq/lancer/internal/tui"
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Track work sessions on your active projects",
}

var workStartCmd = &cobra.Command{
	Use:   "start [project-id]",
	Short: "Start a work session",
	Long: `Start a work session on a project. Opens the live timer by default;
use --no-ui to start and return to the shell.`,
	Args: cobra.ExactArgs(1),
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project ID '%s'\n", args[0])
			return
		}

		ws, err := client.StartWork(cmd.Context(), models.WorkStartRequest{ProjectID: projectID})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Working on %s since %s\n", projectRef(ws), ws.StartTime.Format("15:04:05"))
			return
		}
		runWorkTimer(cmd, ws)
	}),
}

var workStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active work session",
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		notes, _ := cmd.Flags().GetString("notes")

		ws, err := client.StopWork(cmd.Context(), models.WorkStopRequest{Notes: notes})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏹️  Stopped session on %s", projectRef(ws))
		if ws.Hours != nil {
			fmt.Printf(" — %.2f hours", *ws.Hours)
		}
		fmt.Println()
	}),
}

var workStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active work session",
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		ws, err := client.ActiveWorkSession(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if ws == nil {
			fmt.Println("No active work session.")
			return
		}

		fmt.Printf("⏱️  Working on %s\n", projectRef(ws))
		fmt.Printf("Started at: %s\n", ws.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", timer.Format(nowSince(ws)))
	}),
}

var workSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List past work sessions",
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		projectID, _ := cmd.Flags().GetInt64("project")

		sessions, err := client.WorkSessions(cmd.Context(), projectID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No work sessions recorded.")
			return
		}

		fmt.Printf("%-5s %-28s %-18s %-8s %s\n", "ID", "PROJECT", "STARTED", "HOURS", "STATUS")
		fmt.Println(strings.Repeat("-", 72))
		for _, ws := range sessions {
			hours := "-"
			if ws.Hours != nil {
				hours = fmt.Sprintf("%.2f", *ws.Hours)
			}
			project := projectRef(&ws)
			if len(project) > 26 {
				project = project[:23] + "..."
			}
			fmt.Printf("%-5d %-28s %-18s %-8s %s\n",
				ws.ID, project, ws.StartTime.Format("Jan 02 15:04"), hours, models.Label(ws.Status))
		}
	}),
}

var workTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show hours worked today",
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		hours, err := client.TodayHours(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⏱️  %.2f hours today\n", hours)
	}),
}

var workTimerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Open the live timer for the active session",
	Run: withView("work", func(cmd *cobra.Command, args []string) {
		ws, err := client.ActiveWorkSession(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if ws == nil {
			fmt.Println("No active work session. Start one with 'lancer work start <project-id>'.")
			return
		}
		runWorkTimer(cmd, ws)
	}),
}

// runWorkTimer hands the session to the TUI with a stop callback that
// goes through the API.
func runWorkTimer(cmd *cobra.Command, ws *models.WorkSession) {
	stopped, err := tui.RunWorkTimer(cmd.Context(), ws, func() (*models.WorkSession, error) {
		return client.StopWork(cmd.Context(), models.WorkStopRequest{})
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if stopped != nil {
		fmt.Printf("⏹️  Stopped session on %s", projectRef(stopped))
		if stopped.Hours != nil {
			fmt.Printf(" — %.2f hours", *stopped.Hours)
		}
		fmt.Println()
	} else {
		fmt.Printf("💡 Session is still running on %s.\n", projectRef(ws))
		fmt.Println("   Use 'lancer work status' to check it or 'lancer work stop' to end it.")
	}
}

func projectRef(ws *models.WorkSession) string {
	if ws.ProjectTitle != "" {
		return ws.ProjectTitle
	}
	return fmt.Sprintf("project #%d", ws.ProjectID)
}

func nowSince(ws *models.WorkSession) time.Duration {
	return time.Since(ws.StartTime)
}

func init() {
	workStartCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")
	workStopCmd.Flags().String("notes", "", "Notes to attach to the session")
	workSessionsCmd.Flags().Int64P("project", "p", 0, "Only sessions for this project")

	workCmd.AddCommand(workStartCmd)
	workCmd.AddCommand(workStopCmd)
	workCmd.AddCommand(workStatusCmd)
	workCmd.AddCommand(workSessionsCmd)
	workCmd.AddCommand(workTodayCmd)
	workCmd.AddCommand(workTimerCmd)
}
