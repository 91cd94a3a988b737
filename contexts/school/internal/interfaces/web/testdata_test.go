package web_test

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/contexts/school/internal/application"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/web"
	"github.com/go-arrower/recordstore/mw"
)

const (
	johnJSON = `{"id":1,"name":"John","age":17,"year":"12A"}`
	timJSON  = `{"id":2,"name":"Tim","age":15,"year":"10D"}`
)

func newTestRouter() *echo.Echo {
	repo := repository.NewStudentMemoryRepository()
	_ = repo.CreateAll(context.Background(), []domain.Student{
		{StudentID: 1, Name: "John", Age: 17, Year: "12A"},
		{StudentID: 2, Name: "Tim", Age: 15, Year: "10D"},
	})

	e := echo.New()
	e.HTTPErrorHandler = mw.ErrorHandler(alog.NewNoop())

	controller := web.NewStudentController(application.SchoolApplication{
		EnrolStudent:   application.NewEnrolStudentRequestHandler(repo),
		ShowStudent:    application.NewShowStudentQueryHandler(repo),
		ListStudents:   application.NewListStudentsQueryHandler(repo),
		SearchStudents: application.NewSearchStudentsQueryHandler(repo),
		UpdateStudent:  application.NewUpdateStudentRequestHandler(repo),
		RemoveStudent:  application.NewRemoveStudentRequestHandler(repo),
	})

	e.GET("/students", controller.Index())
	e.POST("/students", controller.Store())
	e.GET("/students/:id", controller.Show())
	e.PUT("/students/:id", controller.Update())
	e.DELETE("/students/:id", controller.Delete())

	return e
}

func serve(e *echo.Echo, method string, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
