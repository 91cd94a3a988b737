package application

import "github.com/go-arrower/recordstore/app"

// SchoolApplication bundles all use cases of the school.
type SchoolApplication struct {
	EnrolStudent   app.Request[EnrolStudentRequest, EnrolStudentResponse]
	ShowStudent    app.Query[ShowStudentQuery, ShowStudentResponse]
	ListStudents   app.Query[ListStudentsQuery, ListStudentsResponse]
	SearchStudents app.Query[SearchStudentsQuery, SearchStudentsResponse]
	UpdateStudent  app.Request[UpdateStudentRequest, UpdateStudentResponse]
	RemoveStudent  app.Request[RemoveStudentRequest, RemoveStudentResponse]
}
