package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard totals or per-quiz question statistics",
	Long: `Without flags, stats prints the dashboard summary. With --quiz it
prints the per-question answer breakdown for that quiz.

Examples:
  quizctl stats                # Totals across quizzes, students, submissions
  quizctl stats --quiz 7       # Question statistics for quiz 7`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Int("quiz", 0, "quiz ID for per-question statistics")
}

func runStats(cmd *cobra.Command, args []string) error {
	quizID, _ := cmd.Flags().GetInt("quiz")
	if quizID > 0 {
		return showQuizStats(cmd, quizID)
	}

	summary, err := instructorService.Overview(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Quizzes:     %d\n", summary.TotalQuizzes)
	fmt.Printf("Students:    %d\n", summary.TotalStudents)
	fmt.Printf("Submissions: %d\n", summary.TotalSubmissions)
	return nil
}

func showQuizStats(cmd *cobra.Command, quizID int) error {
	stats, err := instructorService.QuizStatistics(cmd.Context(), quizID)
	if err != nil {
		return err
	}
	fmt.Printf("%s (quiz %d)\n", stats.QuizTitle, stats.QuizID)
	for _, q := range stats.QuestionStats {
		fmt.Printf("%4d  %3d correct / %3d incorrect  %s\n", q.QuestionID, q.Correct, q.Incorrect, q.QuestionText)
	}
	if stats.MostMissedQuestion.QuestionID != 0 {
		fmt.Printf("Most missed:   %s\n", stats.MostMissedQuestion.QuestionText)
	}
	if stats.MostCorrectQuestion.QuestionID != 0 {
		fmt.Printf("Most answered: %s\n", stats.MostCorrectQuestion.QuestionText)
	}
	return nil
}
