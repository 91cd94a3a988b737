package web_test

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/contexts/shop/internal/application"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/web"
	"github.com/go-arrower/recordstore/mw"
	"github.com/go-arrower/recordstore/optional"
)

var (
	hammer = domain.Item{
		ID:          0,
		Name:        "Hammer",
		Price:       9.99,
		Count:       20,
		Category:    domain.CategoryTools,
		Description: optional.Of("The strongest hammer you can have for $10"),
	}
	pliers = domain.Item{ID: 1, Name: "Pliers", Price: 5.99, Count: 20, Category: domain.CategoryTools}
	nails  = domain.Item{ID: 2, Name: "Nails", Price: 1.99, Count: 100, Category: domain.CategoryConsumables}
)

// newTestRouter returns a router serving the seeded shop under /items.
func newTestRouter() *echo.Echo {
	repo := repository.NewItemMemoryRepository()
	_ = repo.CreateAll(context.Background(), []domain.Item{hammer, pliers, nails})

	return newTestRouterWith(application.ShopApplication{
		CreateItem:  application.NewCreateItemRequestHandler(repo),
		ShowItem:    application.NewShowItemQueryHandler(repo),
		ListItems:   application.NewListItemsQueryHandler(repo),
		SearchItems: application.NewSearchItemsQueryHandler(repo),
		UpdateItem:  application.NewUpdateItemRequestHandler(repo),
		DeleteItem:  application.NewDeleteItemRequestHandler(repo),
	})
}

func newTestRouterWith(app application.ShopApplication) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = mw.ErrorHandler(alog.NewNoop())

	controller := web.NewItemController(app)

	e.GET("/items", controller.Index())
	e.POST("/items", controller.Store())
	e.GET("/items/:id", controller.Show())
	e.PUT("/items/:id", controller.Update())
	e.DELETE("/items/:id", controller.Delete())

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

