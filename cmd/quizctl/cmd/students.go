package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "List students across the instructor's courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		students, err := instructorService.Students(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range students {
			fmt.Printf("%4d  level %d  %-25s %s\n", s.ID, s.Level, s.Name, s.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(studentsCmd)
}
