// Package q builds repository conditions from textual expressions,
// so callers like a web API can offer free form filtering,
// e.g. `price >= 6 && category == "tools"`.
//
// Expressions are compiled with expr-lang/expr against the entity type.
// Field names are the struct field names, or the name given in an `expr` struct tag.
package q

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/go-arrower/recordstore/repository"
)

var ErrInvalidExpression = errors.New("invalid expression")

// Operator represents comparison operators.
type Operator string

const (
	Eq  Operator = "=="
	Ne  Operator = "!="
	Gt  Operator = ">"
	Gte Operator = ">="
	Lt  Operator = "<"
	Lte Operator = "<="
)

// Cond is a single comparison of a field with a value.
type Cond struct {
	Field    string
	Operator Operator
	Value    any
}

func (c Cond) String() string {
	return fmt.Sprintf("%s %s %s", c.Field, c.Operator, literal(c.Value))
}

func literal(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return strconv.Quote(val.String())
	default:
		return fmt.Sprint(val)
	}
}

func Where(field string) *WhereQuery {
	return &WhereQuery{field: field}
}

type WhereQuery struct {
	field string
}

func (w *WhereQuery) Is(value any) Cond  { return Cond{Field: w.field, Operator: Eq, Value: value} }
func (w *WhereQuery) Not(value any) Cond { return Cond{Field: w.field, Operator: Ne, Value: value} }
func (w *WhereQuery) Gt(value any) Cond  { return Cond{Field: w.field, Operator: Gt, Value: value} }
func (w *WhereQuery) Gte(value any) Cond { return Cond{Field: w.field, Operator: Gte, Value: value} }
func (w *WhereQuery) Lt(value any) Cond  { return Cond{Field: w.field, Operator: Lt, Value: value} }
func (w *WhereQuery) Lte(value any) Cond { return Cond{Field: w.field, Operator: Lte, Value: value} }

// Compile combines all conds with a logical AND into one Condition.
func Compile[E any](conds ...Cond) (repository.Condition[E], error) {
	if len(conds) == 0 {
		return repository.And[E](), nil
	}

	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, "("+c.String()+")")
	}

	return Expr[E](strings.Join(parts, " && "))
}

// Expr compiles source into a Condition for E.
// The expression has to evaluate to a bool.
// If the evaluation fails for an entity at run time, e.g. because of a division by zero,
// the entity does not match.
func Expr[E any](source string) (repository.Condition[E], error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidExpression)
	}

	program, err := expr.Compile(source, expr.Env(*new(E)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err) //nolint:errorlint // do not expose expr internals
	}

	return func(e E) bool {
		out, err := expr.Run(program, e)
		if err != nil {
			return false
		}

		match, ok := out.(bool)

		return ok && match
	}, nil
}
