package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List the instructor's quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		quizzes, err := instructorService.Quizzes(cmd.Context())
		if err != nil {
			return err
		}
		for _, q := range quizzes {
			fmt.Printf("%4d  week %2d  %-30s %s  %d pts\n", q.ID, q.WeekNumber, q.Title, q.CourseName, q.TotalPoints)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quizzesCmd)
}
