package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the instructor's courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := instructorService.Courses(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range courses {
			fmt.Printf("%4d  %-10s level %d  %s\n", c.ID, c.Code, c.Level, c.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
