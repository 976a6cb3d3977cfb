package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
	"github.com/wanderwise/backend/internal/service"
)

func newCheckUserCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "check-user",
		Short: "Show a user's roles, status, owner, and whether it can sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := a.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			out := cmd.OutOrStdout()
			users := service.NewUserService(repo.NewUserRepo(pool), repo.NewTransactor(pool))
			u, err := users.GetByEmail(ctx, email)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintf(out, "user %s not found\n", email)
				return nil
			}
			if err != nil {
				return err
			}

			_, err = repo.NewAccountRepo(pool).GetByEmail(ctx, u.Email)
			hasLogin := err == nil
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			owner := "-"
			if u.TravelAgentID != nil {
				owner = *u.TravelAgentID
			}
			fmt.Fprintf(out, "id:          %s\n", u.ID)
			fmt.Fprintf(out, "email:       %s\n", u.Email)
			fmt.Fprintf(out, "name:        %s\n", u.Name)
			fmt.Fprintf(out, "roles:       %s\n", strings.Join(u.Roles, ", "))
			fmt.Fprintf(out, "active:      %t\n", u.IsActive)
			fmt.Fprintf(out, "agent:       %s\n", owner)
			fmt.Fprintf(out, "credentials: %t\n", hasLogin)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address to look up")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCreateAdminCmd(a *app) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account directly in the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := a.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			users := service.NewUserService(repo.NewUserRepo(pool), repo.NewTransactor(pool))
			u, err := users.Create(ctx, domain.NewUser{
				Email:    email,
				Password: password,
				Name:     name,
				Roles:    []string{domain.RoleAdmin},
			})
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "admin created", "user_id", u.ID, "email", u.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (at least 8 characters)")
	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
