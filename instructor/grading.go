package instructor

import (
	"context"
	"net/http"
)

// Submissions lists the submissions handed in for one quiz.
func (s *Service) Submissions(ctx context.Context, quizID int) ([]Submission, error) {
	var out []Submission
	if err := s.get(ctx, quizPath(quizID, "submissions/"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GradeSubmission stores per-answer points and feedback for one submission.
func (s *Service) GradeSubmission(ctx context.Context, submissionID int, answers []GradedAnswer) error {
	payload := map[string][]GradedAnswer{"answers": answers}
	return s.send(ctx, http.MethodPatch, submissionPath(submissionID, "grade/"), payload, nil)
}

// EditFeedback replaces the submission-level feedback text.
func (s *Service) EditFeedback(ctx context.Context, submissionID int, feedback string) error {
	payload := map[string]string{"feedback": feedback}
	return s.send(ctx, http.MethodPatch, submissionPath(submissionID, "edit-feedback/"), payload, nil)
}
