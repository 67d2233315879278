package cmd

import (
	"fmt"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *cliApp) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.Login(cmd.Context(), creds)
			if err != nil {
				printError(cmd.ErrOrStderr(), "Login failed.")
				return errFailed
			}
			if err := a.store.SaveLogin(resp.Token, resp.User); err != nil {
				return fmt.Errorf("save token: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Login successful!")
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("token saved to "+a.store.Path()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *cliApp) *cobra.Command {
	var req domain.RegistrationRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.Register(cmd.Context(), req); err != nil {
				printError(cmd.ErrOrStderr(), "Registration failed.")
				return errFailed
			}
			printSuccess(cmd.OutOrStdout(), "Registration successful! Please log in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	for _, name := range []string{"username", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
