package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "instructor email")
	loginCmd.Flags().String("password", "", "instructor password")
	loginCmd.Flags().Bool("remember", false, "keep the session for 7 days instead of 2 hours")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	remember, _ := cmd.Flags().GetBool("remember")

	profile, err := authService.Login(cmd.Context(), email, password, remember)
	if err != nil {
		return err
	}
	if profile != nil {
		fmt.Printf("Signed in as %s <%s>\n", profile.Name, profile.Email)
	} else {
		fmt.Println("Signed in")
	}
	return nil
}
