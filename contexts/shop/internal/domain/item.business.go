// Package domain contains the inventory of the shop.
package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/go-arrower/recordstore/optional"
	"github.com/go-arrower/recordstore/repository"
	"github.com/go-arrower/recordstore/repository/q"
)

// Categories an Item can belong to.
const (
	CategoryTools       = "tools"
	CategoryConsumables = "consumables"
)

// Item is a single article in stock.
// The expr tags name the fields for filter expressions, e.g. `price >= 6 && category == "tools"`.
type Item struct {
	ID          int                    `expr:"id"          json:"id"          yaml:"id"`
	Name        string                 `expr:"name"        json:"name"        yaml:"name"`
	Price       float64                `expr:"price"       json:"price"       yaml:"price"`
	Count       int                    `expr:"count"       json:"count"       yaml:"count"`
	Category    string                 `expr:"category"    json:"category"    yaml:"category"`
	Description optional.Value[string] `expr:"description" json:"description" yaml:"description"`
}

func (i Item) InStock() bool {
	return i.Count > 0
}

// Filter selects items. Criteria that are not set match every item.
type Filter struct {
	// Name matches case-insensitive.
	Name     optional.Value[string]
	MinPrice optional.Value[float64]
	MinCount optional.Value[int]
	Category optional.Value[string]
	// InStock true matches items with a positive count, false the ones sold out.
	InStock optional.Value[bool]
}

func (f Filter) IsEmpty() bool {
	return !f.Name.IsSet() && !f.MinPrice.IsSet() && !f.MinCount.IsSet() && !f.Category.IsSet() && !f.InStock.IsSet()
}

// Conditions returns the conditions of all set criteria.
// Comparisons of plain fields are compiled into one expression.
func (f Filter) Conditions() ([]repository.Condition[Item], error) {
	conds := []repository.Condition[Item]{}

	if name, ok := f.Name.Get(); ok {
		caser := cases.Fold()
		want := caser.String(name)

		conds = append(conds, func(i Item) bool { return caser.String(i.Name) == want })
	}

	fields := []q.Cond{}

	if price, ok := f.MinPrice.Get(); ok {
		fields = append(fields, q.Where("price").Gte(price))
	}

	if count, ok := f.MinCount.Get(); ok {
		fields = append(fields, q.Where("count").Gte(count))
	}

	if category, ok := f.Category.Get(); ok {
		fields = append(fields, q.Where("category").Is(category))
	}

	if inStock, ok := f.InStock.Get(); ok {
		if inStock {
			fields = append(fields, q.Where("count").Gt(0))
		} else {
			fields = append(fields, q.Where("count").Lte(0))
		}
	}

	if len(fields) == 0 {
		return conds, nil
	}

	cond, err := q.Compile[Item](fields...)
	if err != nil {
		return nil, fmt.Errorf("could not compile filter: %w", err)
	}

	return append(conds, cond), nil
}

// Patch is a partial update of an Item. Only the set fields are changed.
type Patch struct {
	Name        optional.Value[string]  `json:"name"        validate:"omitempty,min=1,max=20"`
	Price       optional.Value[float64] `json:"price"       validate:"omitempty,gt=0"`
	Count       optional.Value[int]     `json:"count"       validate:"omitempty,gte=0"`
	Category    optional.Value[string]  `json:"category"    validate:"omitempty,oneof=tools consumables"`
	Description optional.Value[string]  `json:"description" validate:"omitempty,max=200"`
}

func (p Patch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Price.IsSet() && !p.Count.IsSet() && !p.Category.IsSet() && !p.Description.IsSet()
}

// HasBlankName reports a name that is set but consists of white space only.
func (p Patch) HasBlankName() bool {
	name, ok := p.Name.Get()

	return ok && strings.TrimSpace(name) == ""
}

// Apply returns a copy of item with all set fields of p.
func (p Patch) Apply(item Item) Item {
	if name, ok := p.Name.Get(); ok {
		item.Name = name
	}

	if price, ok := p.Price.Get(); ok {
		item.Price = price
	}

	if count, ok := p.Count.Get(); ok {
		item.Count = count
	}

	if category, ok := p.Category.Get(); ok {
		item.Category = category
	}

	if p.Description.IsSet() {
		item.Description = p.Description
	}

	return item
}
