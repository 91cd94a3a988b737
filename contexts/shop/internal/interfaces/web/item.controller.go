package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/contexts/shop/internal/application"
	"github.com/go-arrower/recordstore/contexts/shop/internal/domain"
	"github.com/go-arrower/recordstore/optional"
)

/*
Naming follows the other controllers:
	- index (list & filter)
	- store (new)
	- show
	- update
	- delete
*/

func NewItemController(app application.ShopApplication) *ItemController {
	return &ItemController{app: app}
}

type ItemController struct {
	app application.ShopApplication
}

type (
	indexParams struct {
		Limit optional.Value[int] `query:"limit"`

		Name     optional.Value[string]  `query:"name"`
		MinPrice optional.Value[float64] `query:"min_price"`
		MinCount optional.Value[int]     `query:"min_count"`
		Category optional.Value[string]  `query:"category"`
		InStock  optional.Value[bool]    `query:"in_stock"`
		Where    string                  `query:"where"`
	}

	searchQuery struct {
		Name     optional.Value[string]  `json:"name"`
		MinPrice optional.Value[float64] `json:"min_price"`
		MinCount optional.Value[int]     `json:"min_count"`
		Category optional.Value[string]  `json:"category"`
		InStock  optional.Value[bool]    `json:"in_stock"`
		Where    string                  `json:"where,omitempty"`
	}
	searchResponse struct {
		Query     searchQuery   `json:"query"`
		Selection []domain.Item `json:"selection"`
	}
)

// filterParams switch the index into filter mode, as soon as one of them is present.
var filterParams = []string{"name", "min_price", "min_count", "category", "in_stock", "where"}

func (ic *ItemController) Index() echo.HandlerFunc {
	return func(c echo.Context) error {
		params := indexParams{}
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		if !hasAny(c, filterParams) {
			res, err := ic.app.ListItems.H(c.Request().Context(), application.ListItemsQuery{Limit: params.Limit})
			if err != nil {
				return err //nolint:wrapcheck // mapped to a status code by the error handler
			}

			return c.JSON(http.StatusOK, res.Items)
		}

		res, err := ic.app.SearchItems.H(c.Request().Context(), application.SearchItemsQuery{
			Filter: domain.Filter{
				Name:     params.Name,
				MinPrice: params.MinPrice,
				MinCount: params.MinCount,
				Category: params.Category,
				InStock:  params.InStock,
			},
			Where: params.Where,
			Limit: params.Limit,
		})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, searchResponse{
			Query: searchQuery{
				Name:     res.Query.Filter.Name,
				MinPrice: res.Query.Filter.MinPrice,
				MinCount: res.Query.Filter.MinCount,
				Category: res.Query.Filter.Category,
				InStock:  res.Query.Filter.InStock,
				Where:    res.Query.Where,
			},
			Selection: res.Selection,
		})
	}
}

func (ic *ItemController) Show() echo.HandlerFunc {
	return func(c echo.Context) error {
		var id int
		if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		res, err := ic.app.ShowItem.H(c.Request().Context(), application.ShowItemQuery{ID: id})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Item)
	}
}

func (ic *ItemController) Store() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := application.CreateItemRequest{}
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		res, err := ic.app.CreateItem.H(c.Request().Context(), req)
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusCreated, res.Item)
	}
}

func (ic *ItemController) Update() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := application.UpdateItemRequest{}
		if err := echo.PathParamsBinder(c).MustInt("id", &req.ID).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		if err := (&echo.DefaultBinder{}).BindBody(c, &req.Patch); err != nil {
			return err //nolint:wrapcheck // echo.HTTPError is handled by the error handler
		}

		res, err := ic.app.UpdateItem.H(c.Request().Context(), req)
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Item)
	}
}

func (ic *ItemController) Delete() echo.HandlerFunc {
	return func(c echo.Context) error {
		var id int
		if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
			return err //nolint:wrapcheck // echo.BindingError is handled by the error handler
		}

		res, err := ic.app.DeleteItem.H(c.Request().Context(), application.DeleteItemRequest{ID: id})
		if err != nil {
			return err //nolint:wrapcheck // mapped to a status code by the error handler
		}

		return c.JSON(http.StatusOK, res.Item)
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
