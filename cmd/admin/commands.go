package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Store is the set of admin operations backed by the database.
type Store interface {
	Migrate(ctx context.Context) error
	CreateUser(ctx context.Context, username, password, email string) error
	GrantPremium(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, login string) error
	Close() error
}

// opener connects a Store using the config file at path.
type opener func(ctx context.Context, configPath string) (Store, error)

func newRootCmd(open opener) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "admin",
		Short:        "Mood journal maintenance commands",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	withStore := func(fn func(cmd *cobra.Command, args []string, s Store) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer s.Close()
			return fn(cmd, args, s)
		}
	}

	root.AddCommand(
		newMigrateCmd(withStore),
		newCreateUserCmd(withStore),
		newGrantPremiumCmd(withStore),
		newDeleteUserCmd(withStore),
	)
	return root
}

type storeRunner func(fn func(cmd *cobra.Command, args []string, s Store) error) func(*cobra.Command, []string) error

func newMigrateCmd(withStore storeRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, _ []string, s Store) error {
			if err := s.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		}),
	}
}

func newCreateUserCmd(withStore storeRunner) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a user account",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, _ []string, s Store) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
				pw, err := readPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(pw)
			}
			if err := s.CreateUser(cmd.Context(), username, password, email); err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s created\n", strings.TrimSpace(username))
			return nil
		}),
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newGrantPremiumCmd(withStore storeRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "grant-premium <email>",
		Short: "Upgrade a user to premium without a payment",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, args []string, s Store) error {
			activated, err := s.GrantPremium(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("grant premium: %w", err)
			}
			if activated {
				fmt.Fprintln(cmd.OutOrStdout(), "Premium activated")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "User is already premium")
			}
			return nil
		}),
	}
}

func newDeleteUserCmd(withStore storeRunner) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-user <username|email>",
		Short: "Delete a user and all journal entries",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, args []string, s Store) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			if err := s.DeleteUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete user: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User deleted")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
