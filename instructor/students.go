package instructor

import (
	"context"
	"net/http"
)

// Students lists the students belonging to the instructor's courses.
func (s *Service) Students(ctx context.Context) ([]Student, error) {
	var out []Student
	if err := s.get(ctx, "/instructor/students/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllStudents lists every student on the platform, enrolled or not.
func (s *Service) AllStudents(ctx context.Context) ([]Student, error) {
	var out []Student
	if err := s.get(ctx, "/instructor/students/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateStudent(ctx context.Context, student NewStudent) (*Student, error) {
	var out Student
	if err := s.send(ctx, http.MethodPost, "/instructor/create-student/", student, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) UpdateStudent(ctx context.Context, studentID int, update NewStudent) (*Student, error) {
	var out Student
	if err := s.send(ctx, http.MethodPatch, studentPath(studentID, "update/"), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) RemoveStudent(ctx context.Context, studentID int) error {
	return s.delete(ctx, studentPath(studentID, "remove/"))
}

// AssignCourses replaces the student's course enrollment with courseIDs.
func (s *Service) AssignCourses(ctx context.Context, studentID int, courseIDs []int) error {
	payload := map[string][]int{"course_ids": courseIDs}
	return s.send(ctx, http.MethodPost, studentPath(studentID, "assign-courses/"), payload, nil)
}
