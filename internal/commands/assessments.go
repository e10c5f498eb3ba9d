package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/models"
)

var assessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Take project assessments and check results",
}

var assessmentsShowCmd = &cobra.Command{
	Use:   "show [assessment-id]",
	Short: "Show an assessment and its questions",
	Args:  cobra.ExactArgs(1),
	Run: withView("assessments", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid assessment ID '%s'\n", args[0])
			return
		}

		a, err := client.GetAssessment(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Assessment #%d (%s) — %s\n", a.ID, models.Label(a.Type), models.Label(a.Status))
		if a.ProjectTitle != "" {
			fmt.Printf("Project: %s\n", a.ProjectTitle)
		}
		fmt.Println()

		for i, q := range a.Questions {
			fmt.Printf("%d. %s (%d pts)\n", i+1, q.Text, q.MaxScore)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
		}

		if a.Status == models.NotStarted {
			fmt.Printf("\nStart it with 'lancer assessments start %d'\n", a.ID)
		}
	}),
}

var assessmentsStartCmd = &cobra.Command{
	Use:   "start [assessment-id]",
	Short: "Start an assessment",
	Args:  cobra.ExactArgs(1),
	Run: withView("assessments", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid assessment ID '%s'\n", args[0])
			return
		}

		a, err := client.StartAssessment(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("▶️  Assessment #%d started (%d questions)\n", a.ID, len(a.Questions))
		fmt.Printf("   Answer with 'lancer assessments submit %d --answer <question-id>=<answer>'\n", a.ID)
	}),
}

var assessmentsSubmitCmd = &cobra.Command{
	Use:   "submit [assessment-id]",
	Short: "Submit your answers",
	Long: `Submit answers for an in-progress assessment.

Each --answer pairs a question ID with your answer:
  lancer assessments submit 7 --answer 31=b --answer 32="structs are value types"`,
	Args: cobra.ExactArgs(1),
	Run: withView("assessments", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid assessment ID '%s'\n", args[0])
			return
		}

		pairs, _ := cmd.Flags().GetStringArray("answer")
		answers := make(map[int64]string, len(pairs))
		for _, pair := range pairs {
			qid, answer, ok := strings.Cut(pair, "=")
			q, perr := strconv.ParseInt(strings.TrimSpace(qid), 10, 64)
			if !ok || perr != nil {
				fmt.Printf("Error: malformed --answer %q, expected <question-id>=<answer>\n", pair)
				return
			}
			answers[q] = answer
		}

		sub := models.AssessmentSubmission{Answers: answers}
		if err := validate.Struct(sub); err != nil {
			fmt.Println("Error: at least one --answer is required")
			return
		}

		a, err := client.SubmitAssessment(cmd.Context(), id, sub)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📤 Submitted assessment #%d — status %s\n", a.ID, models.Label(a.Status))
		fmt.Printf("   Check the outcome with 'lancer assessments result %d'\n", a.ID)
	}),
}

var assessmentsResultCmd = &cobra.Command{
	Use:   "result [assessment-id]",
	Short: "Show a graded assessment's score",
	Args:  cobra.ExactArgs(1),
	Run: withView("assessments", func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid assessment ID '%s'\n", args[0])
			return
		}

		a, err := client.AssessmentResult(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Assessment #%d — %s\n", a.ID, models.Label(a.Status))
		if a.Score != nil {
			fmt.Printf("Score: %.1f\n", *a.Score)
		} else {
			fmt.Println("Not graded yet.")
		}
	}),
}

func init() {
	assessmentsSubmitCmd.Flags().StringArray("answer", nil, "Answer as <question-id>=<answer>, repeatable")

	assessmentsCmd.AddCommand(assessmentsShowCmd)
	assessmentsCmd.AddCommand(assessmentsStartCmd)
	assessmentsCmd.AddCommand(assessmentsSubmitCmd)
	assessmentsCmd.AddCommand(assessmentsResultCmd)
}
