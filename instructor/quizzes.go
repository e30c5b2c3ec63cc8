package instructor

import (
	"context"
	"net/http"
	"strconv"
)

// Quizzes lists the instructor's quizzes with their questions embedded.
func (s *Service) Quizzes(ctx context.Context) ([]Quiz, error) {
	var out []Quiz
	if err := s.get(ctx, "/instructor/quizzes/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Quiz fetches one quiz. This endpoint is shared with the student app, so
// it lives outside the /instructor/ prefix.
func (s *Service) Quiz(ctx context.Context, quizID int) (*Quiz, error) {
	var out Quiz
	if err := s.get(ctx, "/quiz/"+strconv.Itoa(quizID)+"/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) EditQuiz(ctx context.Context, quizID int, update QuizUpdate) (*Quiz, error) {
	var out Quiz
	if err := s.send(ctx, http.MethodPatch, quizPath(quizID, "edit/"), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) RemoveQuiz(ctx context.Context, quizID int) error {
	return s.delete(ctx, quizPath(quizID, "remove/"))
}

func (s *Service) Questions(ctx context.Context, quizID int) ([]Question, error) {
	var out []Question
	if err := s.get(ctx, quizPath(quizID, "questions/"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateQuestion(ctx context.Context, quizID int, question NewQuestion) (*Question, error) {
	var out Question
	if err := s.send(ctx, http.MethodPost, quizPath(quizID, "questions/create/"), question, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) EditQuestion(ctx context.Context, questionID int, question NewQuestion) (*Question, error) {
	var out Question
	if err := s.send(ctx, http.MethodPatch, questionPath(questionID, "edit/"), question, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) RemoveQuestion(ctx context.Context, questionID int) error {
	return s.delete(ctx, questionPath(questionID, "remove/"))
}
