package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginFlags struct {
	username string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and print a Bearer token",
	Long: `Authenticate against the API and print the issued token.

Export it for subsequent commands:

    export NOTIFY_ADMIN_TOKEN=$(notify-admin login -u admin -p secret)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.Login(cmd.Context(), loginFlags.username, loginFlags.password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Logged in as %s (%s)\n", out.User.Username, out.User.Role)
		fmt.Println(out.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginFlags.username, "username", "u", "", "admin username")
	loginCmd.Flags().StringVarP(&loginFlags.password, "password", "p", "", "admin password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
