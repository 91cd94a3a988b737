package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/contexts/school/internal/application"
	"github.com/go-arrower/recordstore/contexts/school/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

func NewStudentController(app application.SchoolApplication) *StudentController {
	return &StudentController{app: app}
}

type StudentController struct {
	app application.SchoolApplication
}

type (
	indexParams struct {
		Limit optional.Value[int] `query:"limit"`

		Name   optional.Value[string] `query:"name"`
		MinAge optional.Value[int]    `query:"min_age"`
		Year   optional.Value[string] `query:"year"`
		Where  string                 `query:"where"`
	}

	searchQuery struct {
		Name   optional.Value[string] `json:"name"`
		MinAge optional.Value[int]    `json:"min_age"`
		Year   optional.Value[string] `json:"year"`
		Where  string                 `json:"where,omitempty"`
	}
	searchResponse struct {
		Query     searchQuery      `json:"query"`
		Selection []domain.Student `json:"selection"`
	}
)

var filterParams = []string{"name", "min_age", "year", "where"}

func (sc *StudentController) Index() echo.HandlerFunc {
	return func(c echo.Context) error {
		params := indexParams{}
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		if !hasAny(c, filterParams) {
			res, err := sc.app.ListStudents.H(c.Request().Context(), application.ListStudentsQuery{Limit: params.Limit})
			if err != nil {
				return err //nolint:wrapcheck // mapped to a status code by the error handler
			}

			return c.JSON(http.StatusOK, res.Students)
		}

		res, err := sc.app.SearchStudents.H(c.Request().Context(), application.SearchStudentsQuery{
			Filter: domain.Filter{Name: params.Name, MinAge: params.MinAge, Year: params.Year},
			Where:  params.Where,
			Limit:  params.Limit,
		})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, searchResponse{
			Query: searchQuery{
				Name:   res.Query.Filter.Name,
				MinAge: res.Query.Filter.MinAge,
				Year:   res.Query.Filter.Year,
				Where:  res.Query.Where,
			},
			Selection: res.Selection,
		})
	}
}

func (sc *StudentController) Show() echo.HandlerFunc {
	return func(c echo.Context) error {
		var id int
		if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		res, err := sc.app.ShowStudent.H(c.Request().Context(), application.ShowStudentQuery{ID: id})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Student)
	}
}

func (sc *StudentController) Store() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := application.EnrolStudentRequest{}
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		res, err := sc.app.EnrolStudent.H(c.Request().Context(), req)
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusCreated, res.Student)
	}
}

func (sc *StudentController) Update() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := application.UpdateStudentRequest{}
		if err := echo.PathParamsBinder(c).MustInt("id", &req.ID).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		if err := (&echo.DefaultBinder{}).BindBody(c, &req.Patch); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		res, err := sc.app.UpdateStudent.H(c.Request().Context(), req)
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Student)
	}
}

func (sc *StudentController) Delete() echo.HandlerFunc {
	return func(c echo.Context) error {
		var id int
		if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		res, err := sc.app.RemoveStudent.H(c.Request().Context(), application.RemoveStudentRequest{ID: id})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Student)
	}
}

func hasAny(c echo.Context, params []string) bool {
	query := c.QueryParams()

	for _, p := range params {
		if query.Has(p) {
			return true
		}
	}

	return false
}
