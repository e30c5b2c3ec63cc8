package instructor

import "strconv"

// Endpoint builders for the resources addressed by ID.

func coursePath(courseID int, suffix string) string {
	return "/instructor/courses/" + strconv.Itoa(courseID) + "/" + suffix
}

func studentPath(studentID int, suffix string) string {
	return "/instructor/students/" + strconv.Itoa(studentID) + "/" + suffix
}

func quizPath(quizID int, suffix string) string {
	return "/instructor/quizzes/" + strconv.Itoa(quizID) + "/" + suffix
}

func questionPath(questionID int, suffix string) string {
	return "/instructor/questions/" + strconv.Itoa(questionID) + "/" + suffix
}

func submissionPath(submissionID int, suffix string) string {
	return "/instructor/submissions/" + strconv.Itoa(submissionID) + "/" + suffix
}
