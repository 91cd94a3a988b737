package application

import "github.com/go-arrower/recordstore/app"

// ShopApplication bundles all use cases of the shop.
type ShopApplication struct {
	CreateItem  app.Request[CreateItemRequest, CreateItemResponse]
	ShowItem    app.Query[ShowItemQuery, ShowItemResponse]
	ListItems   app.Query[ListItemsQuery, ListItemsResponse]
	SearchItems app.Query[SearchItemsQuery, SearchItemsResponse]
	UpdateItem  app.Request[UpdateItemRequest, UpdateItemResponse]
	DeleteItem  app.Request[DeleteItemRequest, DeleteItemResponse]
}
