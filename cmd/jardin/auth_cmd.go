package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/spf13/cobra"
)

// password returns the flag value, then $JARDIN_PASSWORD, then a line read from stdin.
func password(cmd *cobra.Command, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(configs.EnvPrefix + "_PASSWORD"); env != "" {
		return env, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("no password given (use --password or JARDIN_PASSWORD)")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func settleAuth(a *app, vm *viewmodel.AuthViewModel) error {
	s := vm.State().Value()
	a.out.Auth(s)
	if s.Status != viewmodel.AuthAuthenticated {
		return errReported
	}
	return nil
}

func newLoginCmd(current func() *app) *cobra.Command {
	var pass string
	cmd := &cobra.Command{
		Use:   "login <email-or-username>",
		Short: "Sign in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			p, err := password(cmd, pass)
			if err != nil {
				return err
			}

			vm := viewmodel.NewAuthViewModel(a.auth)
			defer vm.Close()
			vm.Login(cmd.Context(), args[0], p)
			return settleAuth(a, vm)
		},
	}
	cmd.Flags().StringVar(&pass, "password", "", "account password (default $JARDIN_PASSWORD, else prompted)")
	return cmd
}

func newRegisterCmd(current func() *app) *cobra.Command {
	var username, email, pass, fullName string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			p, err := password(cmd, pass)
			if err != nil {
				return err
			}

			vm := viewmodel.NewAuthViewModel(a.auth)
			defer vm.Close()
			vm.Register(cmd.Context(), models.RegisterInput{
				Username: username,
				Email:    email,
				Password: p,
				FullName: optional(fullName),
			})
			return settleAuth(a, vm)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username (3 to 100 characters)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&pass, "password", "", "password, at least 6 characters (default $JARDIN_PASSWORD, else prompted)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			vm := viewmodel.NewAuthViewModel(a.auth)
			defer vm.Close()
			vm.Logout(cmd.Context())
			a.out.Auth(vm.State().Value())
			return nil
		},
	}
}

func newWhoamiCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			vm := viewmodel.NewAuthViewModel(a.auth)
			defer vm.Close()
			vm.CheckAuthentication(cmd.Context())
			return settleAuth(a, vm)
		},
	}
}
