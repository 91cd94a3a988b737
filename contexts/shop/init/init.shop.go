// Package init wires the shop context into a recordstore.Container.
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
	"github.com/go-arrower/recordstore/contexts/shop/internal/application"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/repository"
	"github.com/go-arrower/recordstore/contexts/shop/internal/interfaces/web"
)

const contextName = "shop"

//go:embed seed.shop.yaml
var defaultSeed []byte

// ShopContext is the inventory of the shop, served under /api/items.
type ShopContext struct {
	repo *repository.ItemMemoryRepository
}

func NewShopContext(ctx context.Context, di *recordstore.Container) (*ShopContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise shop context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	repo := repository.NewItemMemoryRepository()

	if di.Config.Seed.Enabled {
		if err := seed(ctx, repo, di.Config.Seed.ShopFile); err != nil {
			return nil, fmt.Errorf("could not initialise shop context: %w", err)
		}

		count, _ := repo.Count(ctx)
		logger.LogAttrs(ctx, alog.LevelInfo, "seeded items", slog.Int("count", count))
	}

	shop := application.ShopApplication{
		CreateItem: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewCreateItemRequestHandler(repo)),
		ShowItem: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewShowItemQueryHandler(repo)),
		ListItems: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListItemsQueryHandler(repo)),
		SearchItems: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewSearchItemsQueryHandler(repo)),
		UpdateItem: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewUpdateItemRequestHandler(repo)),
		DeleteItem: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewDeleteItemRequestHandler(repo)),
	}

	controller := web.NewItemController(shop)

	items := di.APIRouter.Group("/items")
	items.GET("", controller.Index())
	items.POST("", controller.Store())
	items.GET("/:id", controller.Show())
	items.PUT("/:id", controller.Update())
	items.DELETE("/:id", controller.Delete())

	di.RegisterRecordCounter(contextName, repo.Count)

	return &ShopContext{repo: repo}, nil
}

// Items returns the number of items in the inventory.
func (sc *ShopContext) Items(ctx context.Context) (int, error) {
	return sc.repo.Count(ctx) //nolint:wrapcheck // in memory, it does not fail
}

// seed loads the items from file or, if no file is given, the items shipped with the binary.
func seed(ctx context.Context, repo *repository.ItemMemoryRepository, file string) error {
	var r io.Reader = bytes.NewReader(defaultSeed)

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open seed file: %w", err)
		}
		defer f.Close()

		r = f
	}

	return repo.Seed(ctx, r) //nolint:wrapcheck // already wrapped by the repository
}
