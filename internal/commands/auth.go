package commands

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/lancerhq/lancer/internal/access"
	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/tui"
)

var validate = validator.New()

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the marketplace",
	Long: `Log in to the marketplace.

Opens an interactive form unless both --email and --password are given.
With --return, a successful login lands on the view you were headed to
before the login gate stopped you.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if store.IsAuthenticated() {
			fmt.Printf("Already logged in as %s. Run 'lancer logout' first to switch accounts.\n", store.Current().Email)
			return
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		returnTo, _ := cmd.Flags().GetString("return")

		var sess *models.Session
		if email == "" || password == "" {
			var err error
			sess, err = tui.RunLogin(cmd.Context(), store.Login)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if sess == nil {
				fmt.Println("❌ Login cancelled.")
				return
			}
		} else {
			creds := models.Credentials{Email: email, Password: password}
			if err := validate.Struct(creds); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			var err error
			sess, err = store.Login(cmd.Context(), creds)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		fmt.Printf("✅ Logged in as %s (%s)\n", sess.Name, models.Label(sess.Role))

		// Land on the stored return target, dashboard by default.
		target := access.AfterLogin(returnTo)
		if decision := guard.Resolve(target); !decision.Allowed {
			target = decision.RedirectTo
		}
		if target == access.HomeRoute {
			fmt.Println()
			renderDashboard(cmd.Context())
		} else {
			fmt.Printf("➡️  Continue with: lancer %s\n", target)
		}
	}),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		req := models.SignupRequest{
			Name:     name,
			Email:    email,
			Phone:    phone,
			Password: password,
			Role:     models.Role(role),
		}
		if err := validate.Struct(req); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if _, err := client.Signup(cmd.Context(), req); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Account created for %s. Log in with 'lancer login --email %s'\n", email, email)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if !store.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return
		}
		store.Logout()
		fmt.Println("👋 Logged out.")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		sess := store.Current()
		if sess == nil {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s <%s> — %s\n", sess.Name, sess.Email, models.Label(sess.Role))
	}),
}

func init() {
	loginCmd.Flags().String("email", "", "Account email (skips the interactive form with --password)")
	loginCmd.Flags().String("password", "", "Account password")
	loginCmd.Flags().String("return", "", "View to open after a successful login")

	signupCmd.Flags().String("name", "", "Full name")
	signupCmd.Flags().String("email", "", "Account email")
	signupCmd.Flags().String("phone", "", "Phone number (E.164, optional)")
	signupCmd.Flags().String("password", "", "Password (min 8 characters)")
	signupCmd.Flags().String("role", string(models.RoleFreelancer), "Account role: FREELANCER or CLIENT")
}
