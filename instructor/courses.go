package instructor

import "context"

// Courses lists the instructor's courses.
func (s *Service) Courses(ctx context.Context) ([]Course, error) {
	var out []Course
	if err := s.get(ctx, "/instructor/courses/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseStudents lists the students enrolled in one course.
func (s *Service) CourseStudents(ctx context.Context, courseID int) ([]Student, error) {
	var out []Student
	if err := s.get(ctx, coursePath(courseID, "students/"), &out); err != nil {
		return nil, err
	}
	return out, nil
}
