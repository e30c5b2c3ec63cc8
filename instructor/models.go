package instructor

// Field names follow the backend's JSON, snake_case throughout.

type Course struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Level int    `json:"level"`
}

type Student struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// NewStudent is the create-student payload. Password is optional; the
// backend generates one when it is empty.
type NewStudent struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Level    int    `json:"level"`
	Password string `json:"password,omitempty"`
}

type Question struct {
	ID            int     `json:"id"`
	Quiz          int     `json:"quiz"`
	QuestionText  string  `json:"question_text"`
	QuestionType  string  `json:"question_type"`
	CorrectAnswer *string `json:"correct_answer"`
	Points        int     `json:"points"`
}

// NewQuestion is the question create/edit payload.
type NewQuestion struct {
	QuestionText  string  `json:"question_text"`
	QuestionType  string  `json:"question_type"`
	CorrectAnswer *string `json:"correct_answer,omitempty"`
	Points        int     `json:"points"`
}

type Quiz struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	CourseID    int        `json:"course_id"`
	CourseName  string     `json:"course_name"`
	WeekNumber  int        `json:"week_number"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Duration    int        `json:"duration"`
	TotalPoints int        `json:"total_points"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	Questions   []Question `json:"questions"`
}

// QuizUpdate carries the editable quiz fields; nil fields are left alone.
type QuizUpdate struct {
	Title      *string `json:"title,omitempty"`
	WeekNumber *int    `json:"week_number,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Duration   *int    `json:"duration,omitempty"`
}

type QuestionStat struct {
	QuestionID   int    `json:"question_id"`
	QuestionText string `json:"question_text"`
	Points       int    `json:"points"`
	Correct      int    `json:"correct"`
	Incorrect    int    `json:"incorrect"`
}

type QuizStats struct {
	QuizID              int            `json:"quiz_id"`
	QuizTitle           string         `json:"quiz_title"`
	QuestionStats       []QuestionStat `json:"question_stats"`
	MostMissedQuestion  QuestionStat   `json:"most_missed_question"`
	MostCorrectQuestion QuestionStat   `json:"most_correct_question"`
}

type Answer struct {
	ID           int     `json:"id"`
	QuestionID   int     `json:"question_id"`
	QuestionText string  `json:"question_text"`
	AnswerText   string  `json:"answer_text"`
	Points       *int    `json:"points"`
	Feedback     *string `json:"feedback"`
}

// GradedAnswer is one entry of the grade-submission payload.
type GradedAnswer struct {
	ID       int     `json:"id"`
	Points   int     `json:"points"`
	Feedback *string `json:"feedback,omitempty"`
}

type Submission struct {
	ID             int      `json:"id"`
	Student        int      `json:"student"`
	StudentName    string   `json:"student_name"`
	Quiz           int      `json:"quiz"`
	SubmissionDate string   `json:"submission_date"`
	Grade          *float64 `json:"grade"`
	Feedback       *string  `json:"feedback"`
	GradedAt       *string  `json:"graded_at"`
	Status         string   `json:"status"`
	Answers        []Answer `json:"answers"`
}

// Submission status values.
const (
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
	StatusReleased  = "released"
)

type OverviewSummary struct {
	TotalQuizzes     int `json:"total_quizzes"`
	TotalStudents    int `json:"total_students"`
	TotalSubmissions int `json:"total_submissions"`
}

// ProfileUpdate carries the editable instructor profile fields.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
