package instructor

import (
	"context"
	"net/http"
	"strconv"
)

// Overview returns the dashboard totals.
func (s *Service) Overview(ctx context.Context) (*OverviewSummary, error) {
	var out OverviewSummary
	if err := s.get(ctx, "/instructor/statistics/summary/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuizStatistics returns the per-question answer breakdown for one quiz,
// including the most missed and most answered questions.
func (s *Service) QuizStatistics(ctx context.Context, quizID int) (*QuizStats, error) {
	var out QuizStats
	endpoint := "/instructor/statistics/question-stats/" + strconv.Itoa(quizID) + "/"
	if err := s.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditProfile updates the instructor's own display profile.
func (s *Service) EditProfile(ctx context.Context, update ProfileUpdate) error {
	return s.send(ctx, http.MethodPatch, "/instructor/profile/edit/", update, nil)
}
