package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderwise/backend/internal/apiclient"
	"github.com/wanderwise/backend/internal/domain"
)

const apiTimeout = 15 * time.Second

// testUsers are the accounts seed-test-users creates, one per staff role
// plus a plain traveler.
var testUsers = []apiclient.NewUser{
	{Email: "travelagent@test.com", Password: "Test123!", Name: "Test Travel Agent", Roles: []string{domain.RoleTravelAgent}},
	{Email: "editor@test.com", Password: "Test123!", Name: "Test Editor", Roles: []string{domain.RoleEditor}},
	{Email: "traveler@test.com", Password: "Test123!", Name: "Test Traveler", Roles: []string{domain.RoleTraveler}},
}

// remoteFlags are the connection flags shared by the HTTP subcommands.
type remoteFlags struct {
	api      string
	email    string
	password string
}

// register adds the flags, naming the credential flags with prefix
// (e.g. "admin-" for --admin-email). A non-empty defaultEmail makes --email
// optional.
func (f *remoteFlags) register(cmd *cobra.Command, prefix, defaultEmail string) {
	cmd.Flags().StringVar(&f.api, "api", envOr("WANDERWISE_API", "http://localhost:8080"), "API base URL")
	cmd.Flags().StringVar(&f.email, prefix+"email", defaultEmail, "email to sign in with")
	cmd.Flags().StringVar(&f.password, prefix+"password", "", "password to sign in with")
	if defaultEmail == "" {
		_ = cmd.MarkFlagRequired(prefix + "email")
	}
	_ = cmd.MarkFlagRequired(prefix + "password")
}

func newSeedTestUsersCmd() *cobra.Command {
	var f remoteFlags
	cmd := &cobra.Command{
		Use:   "seed-test-users",
		Short: "Sign in as an admin and create the standard test accounts over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			c := apiclient.New(f.api, apiTimeout)

			token, err := c.SignIn(ctx, f.email, f.password)
			if err != nil {
				return fmt.Errorf("admin sign-in failed: %w", err)
			}

			var failed int
			for _, nu := range testUsers {
				u, err := c.CreateUser(ctx, token, nu)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", nu.Email, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s (%s) roles=%v\n", u.Email, u.ID, u.Roles)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d test users could not be created", failed, len(testUsers))
			}
			return nil
		},
	}
	f.register(cmd, "admin-", "admin@wanderwise.com")
	return cmd
}

func newInvokeCmd() *cobra.Command {
	var f remoteFlags
	var path, data string
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Sign in and POST a JSON body to an API path, printing the response",
		Example: `  wwadmin invoke --email agent@test.com --password Test123! --path /travelers \
    --data '{"email":"test-traveler@example.com","password":"testpassword123","name":"Test Traveler"}'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !json.Valid([]byte(data)) {
				return errors.New("--data is not valid JSON")
			}
			ctx := cmd.Context()
			c := apiclient.New(f.api, apiTimeout)

			token, err := c.SignIn(ctx, f.email, f.password)
			if err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}
			status, body, err := c.Post(ctx, token, path, json.RawMessage(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n%s\n", status, body)
			return nil
		},
	}
	f.register(cmd, "", "")
	cmd.Flags().StringVar(&path, "path", "/travelers", "API path to POST to")
	cmd.Flags().StringVar(&data, "data", "{}", "JSON request body")
	return cmd
}
