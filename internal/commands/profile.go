package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your freelancer profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Run: withView("profile", func(cmd *cobra.Command, args []string) {
		p, err := client.GetProfile(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("%s <%s>\n", p.Name, p.Email)
		fmt.Printf("Verification: %s", models.Label(p.VerificationStatus))
		if p.Rating != nil {
			fmt.Printf(" · Rating: %.1f", *p.Rating)
		}
		fmt.Println()
		if p.Phone != "" {
			fmt.Printf("Phone: %s\n", p.Phone)
		}
		if p.Address != "" {
			fmt.Printf("Address: %s\n", p.Address)
		}

		if len(p.Skills) > 0 {
			var skills []string
			for _, s := range p.Skills {
				skills = append(skills, fmt.Sprintf("%s (%dy)", s.Name, s.Years))
			}
			fmt.Printf("Skills: %s\n", strings.Join(skills, ", "))
		}
		for _, e := range p.Education {
			line := e.Institution
			if e.Degree != "" {
				line += " — " + e.Degree
			}
			if e.Year > 0 {
				line += fmt.Sprintf(" (%d)", e.Year)
			}
			fmt.Printf("Education: %s\n", line)
		}
		if len(p.Documents) > 0 {
			fmt.Printf("Documents: %d uploaded\n", len(p.Documents))
		}

		if !p.Completed {
			fmt.Println("\n⚠️  Profile incomplete — finish it to unlock project applications.")
		}
	}),
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update your profile",
	Long: `Update profile fields. Unset flags keep their server-side values for
phone and address; skills and education are replaced wholesale when given.

  lancer profile edit --phone +31612345678 --skill "Go=5" --skill "SQL=3"`,
	Run: withView("profile", func(cmd *cobra.Command, args []string) {
		current, err := client.GetProfile(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := models.ProfileUpdateRequest{
			Phone:     current.Phone,
			Address:   current.Address,
			Skills:    current.Skills,
			Education: current.Education,
			Documents: current.Documents,
		}

		if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
			req.Phone = phone
		}
		if address, _ := cmd.Flags().GetString("address"); address != "" {
			req.Address = address
		}
		if pairs, _ := cmd.Flags().GetStringArray("skill"); len(pairs) > 0 {
			var skills []models.Skill
			for _, pair := range pairs {
				name, years, ok := strings.Cut(pair, "=")
				y := 0
				if ok {
					y, _ = strconv.Atoi(strings.TrimSpace(years))
				}
				skills = append(skills, models.Skill{Name: strings.TrimSpace(name), Years: y})
			}
			req.Skills = skills
		}

		if err := validate.Struct(req); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		updated, err := client.UpdateProfile(cmd.Context(), req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("✅ Profile updated.")
		if !updated.Completed {
			fmt.Println("⚠️  Still incomplete — check 'lancer profile show' for what's missing.")
		}
	}),
}

func init() {
	profileEditCmd.Flags().String("phone", "", "Phone number (E.164)")
	profileEditCmd.Flags().String("address", "", "Postal address")
	profileEditCmd.Flags().StringArray("skill", nil, "Skill as <name>=<years>, repeatable; replaces the skill list")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
}
