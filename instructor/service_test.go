package instructor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/black301/quiz-system-client/api"
	"github.com/black301/quiz-system-client/instructor"
	"github.com/black301/quiz-system-client/internal/utils"
	"github.com/black301/quiz-system-client/session"
)

type endpoints struct {
	base string
}

func (e endpoints) GetBaseURL() string     { return e.base }
func (e endpoints) GetRefreshPath() string { return "/auth/refresh/" }
func (e endpoints) GetLogoutPath() string  { return "/auth/logout/" }

func newService(t *testing.T, handler http.HandlerFunc) *instructor.Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewDualStore(session.NewMemoryExpiring(), session.NewMemoryKV())
	require.NoError(t, store.SetCredentials(session.Credentials{Access: "a1", Refresh: "r1"}, session.Standard))

	client, err := api.New(endpoints{base: server.URL}, store)
	require.NoError(t, err)
	service, err := instructor.NewService(client)
	require.NoError(t, err)
	return service
}

func TestCoursesListsTypedResults(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/courses/", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Algorithms","code":"CS101","level":2}]`))
	})

	courses, err := service.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "CS101", courses[0].Code)
	require.Equal(t, 2, courses[0].Level)
}

func TestCreateStudentPostsPayload(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/create-student/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Sam Lee", payload["name"])
		require.NotContains(t, payload, "password")

		_, _ = w.Write([]byte(`{"id":9,"name":"Sam Lee","email":"sam@example.com","level":1}`))
	})

	student, err := service.CreateStudent(context.Background(), instructor.NewStudent{
		Name:  "Sam Lee",
		Email: "sam@example.com",
		Level: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 9, student.ID)
}

func TestRemoveQuizUsesDelete(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/quizzes/42/remove/", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, service.RemoveQuiz(context.Background(), 42))
}

func TestGradeSubmissionPatchesAnswers(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/submissions/7/grade/", r.URL.Path)
		require.Equal(t, http.MethodPatch, r.Method)

		var payload struct {
			Answers []instructor.GradedAnswer `json:"answers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Answers, 1)
		require.Equal(t, 3, payload.Answers[0].Points)

		_, _ = w.Write([]byte(`{}`))
	})

	err := service.GradeSubmission(context.Background(), 7, []instructor.GradedAnswer{
		{ID: 11, Points: 3, Feedback: utils.Ptr("Close, check the base case")},
	})
	require.NoError(t, err)
}

func TestOverviewParsesTotals(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/statistics/summary/", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_quizzes":4,"total_students":120,"total_submissions":310}`))
	})

	summary, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, summary.TotalQuizzes)
	require.Equal(t, 120, summary.TotalStudents)
	require.Equal(t, 310, summary.TotalSubmissions)
}

func TestQuizStatisticsParsesQuestionBreakdown(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/instructor/statistics/question-stats/7/", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{
			"quiz_id": 7,
			"quiz_title": "Week 3 Quiz",
			"question_stats": [
				{"question_id": 31, "question_text": "Define a heap", "points": 5, "correct": 18, "incorrect": 6},
				{"question_id": 32, "question_text": "Sort stability", "points": 5, "correct": 9, "incorrect": 15}
			],
			"most_missed_question": {"question_id": 32, "question_text": "Sort stability", "points": 5, "correct": 9, "incorrect": 15},
			"most_correct_question": {"question_id": 31, "question_text": "Define a heap", "points": 5, "correct": 18, "incorrect": 6}
		}`))
	})

	stats, err := service.QuizStatistics(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 7, stats.QuizID)
	require.Len(t, stats.QuestionStats, 2)
	require.Equal(t, 32, stats.MostMissedQuestion.QuestionID)
	require.Equal(t, 18, stats.MostCorrectQuestion.Correct)
}

func TestAPIFailureKeepsMessageContract(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found"}`))
	})

	_, err := service.Quiz(context.Background(), 404)
	require.EqualError(t, err, "Not found")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, api.KindAPI, apiErr.Kind)
}
