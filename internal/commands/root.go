package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lancerhq/lancer/internal/access"
	"github.com/lancerhq/lancer/internal/api"
	"github.com/lancerhq/lancer/internal/config"
	"github.com/lancerhq/lancer/internal/logging"
	"github.com/lancerhq/lancer/internal/models"
	"github.com/lancerhq/lancer/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lancer",
	Short: "Terminal client for the freelance marketplace",
	Long: `lancer is the terminal client for the freelance marketplace platform.
Browse projects, apply, take assessments, sign agreements, track work
sessions and manage your profile without leaving the shell.`,
}

// Shared app state, wired once per process by initApp.
var (
	cfg    *config.Config
	logger *zap.Logger
	store  *session.Store
	client *api.Client
	guard  *access.Guard
)

// initApp wires config, logging, the session store and the API client,
// then restores any persisted session. Panics on failure; nothing
// sensible runs without a store.
func initApp() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}
	logger = logging.New(cfg.LogPath)

	// The store authenticates through the client and the client signs
	// requests with the store's token; the closure breaks the cycle.
	store, err = session.Open(cfg.StorePath(), session.AuthenticatorFunc(
		func(ctx context.Context, creds models.Credentials) (*models.Session, error) {
			return client.Login(ctx, creds)
		}))
	if err != nil {
		panic(err)
	}

	client = api.New(cfg.APIURL, store, store, logger)
	guard = access.NewGuard(store)

	store.Restore()
}

// withView wraps a command so the access gates run before it does. A
// failed gate always redirects somewhere useful, never dead-ends.
func withView(view string, fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		defer logger.Sync()

		decision := guard.Resolve(view)
		if !decision.Allowed {
			if decision.RedirectTo == access.LoginRoute {
				fmt.Println("🔒 You're not logged in.")
				fmt.Printf("   Run 'lancer login --return %s' to pick up where you left off.\n", decision.ReturnTo)
			} else {
				fmt.Println("⛔ You don't have permission for that view. Taking you home:")
				fmt.Println()
				renderDashboard(cmd.Context())
			}
			return
		}

		fn(cmd, args)
	}
}

// withApp wraps the public commands (login, signup) that need wiring
// but no gate.
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		defer logger.Sync()
		fn(cmd, args)
	}
}

// SetVersion sets the build information stamped into the binary.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lancer %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(applicationsCmd)
	rootCmd.AddCommand(assessmentsCmd)
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}
