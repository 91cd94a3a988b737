package init

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-arrower/recordstore"
	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/contexts/school/internal/application"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/contexts/school/internal/interfaces/web"
)

const contextName = "school"

//go:embed seed.school.yaml
var defaultSeed []byte

type SchoolContext struct {
	repo *repository.StudentMemoryRepository
}

func NewSchoolContext(ctx context.Context, di *recordstore.Container) (*SchoolContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise school context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)
	repo := repository.NewStudentMemoryRepository()

	if di.Config.Seed.Enabled {
		var r io.Reader = bytes.NewReader(defaultSeed)

		if file := di.Config.Seed.SchoolFile; file != "" {
			f, err := os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("could not open seed file: %w", err)
			}
			defer f.Close()

			r = f
		}

		if err := repo.Seed(ctx, r); err != nil {
			return nil, fmt.Errorf("could not initialise school context: %w", err)
		}

		count, _ := repo.Count(ctx)
		logger.LogAttrs(ctx, alog.LevelInfo, "seeded students", slog.Int("count", count))
	}

	school := application.SchoolApplication{
		EnrolStudent: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewEnrolStudentRequestHandler(repo)),
		ShowStudent: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewShowStudentQueryHandler(repo)),
		ListStudents: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListStudentsQueryHandler(repo)),
		SearchStudents: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewSearchStudentsQueryHandler(repo)),
		UpdateStudent: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewUpdateStudentRequestHandler(repo)),
		RemoveStudent: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewRemoveStudentRequestHandler(repo)),
	}

	controller := web.NewStudentController(school)

	students := di.APIRouter.Group("/students")
	students.GET("", controller.Index())
	students.POST("", controller.Store())
	students.GET("/:id", controller.Show())
	students.PUT("/:id", controller.Update())
	students.DELETE("/:id", controller.Delete())

	di.RegisterRecordCounter(contextName, repo.Count)

	return &SchoolContext{repo: repo}, nil
}

func (sc *SchoolContext) Students(ctx context.Context) (int, error) {
	return sc.repo.Count(ctx) //nolint:wrapcheck // in memory, it does not fail
}
