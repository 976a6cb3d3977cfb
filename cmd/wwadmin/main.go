// Command wwadmin is the operator CLI for the WanderWise backend: inspecting
// and creating accounts, seeding test users, smoke-testing endpoints,
// applying migrations, and importing legacy data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wanderwise/backend/internal/logging"
)

func main() {
	// A missing .env is normal; real env vars win over it.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app holds flags shared by every subcommand.
type app struct {
	databaseURL string
	logLevel    string
	log         *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wwadmin",
		Short:         "Operator tools for the WanderWise backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log, _ = logging.New(cmd.ErrOrStderr(), a.logLevel, "")
		},
	}
	root.PersistentFlags().StringVar(&a.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string (default $DATABASE_URL)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level: debug, info, warn, error")

	root.AddCommand(
		newCheckUserCmd(a),
		newCreateAdminCmd(a),
		newSeedTestUsersCmd(),
		newInvokeCmd(),
		newSchemaCmd(a),
		newImportCmd(a),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
