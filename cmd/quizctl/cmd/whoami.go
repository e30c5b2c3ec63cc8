package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/black301/quiz-system-client/token"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in instructor and token expiry",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	access := store.Access()
	if access == "" {
		fmt.Println("Not signed in")
		return nil
	}
	if user := store.User(); user != nil {
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
	}
	if claims, err := token.Peek(access); err == nil && !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired, will refresh on next call"
		}
		fmt.Printf("Access token %s until %s\n", state, claims.ExpiresAt.Format(time.RFC1123))
	}
	return nil
}
