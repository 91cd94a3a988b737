// Package domain contains the students of the school.
package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/go-arrower/recordstore/optional"
	"github.com/go-arrower/recordstore/repository"
	"github.com/go-arrower/recordstore/repository/q"
)

// Student attends a year group, e.g. "12A".
// The expr tags name the fields for filter expressions, e.g. `age >= 16 && year startsWith "12"`.
type Student struct {
	StudentID int    `expr:"id"   json:"id"   yaml:"id"`
	Name      string `expr:"name" json:"name" yaml:"name"`
	Age       int    `expr:"age"  json:"age"  yaml:"age"`
	Year      string `expr:"year" json:"year" yaml:"year"`
}

// Filter selects students. Criteria that are not set match every student.
type Filter struct {
	// Name matches case-insensitive.
	Name   optional.Value[string]
	MinAge optional.Value[int]
	Year   optional.Value[string]
}

func (f Filter) IsEmpty() bool {
	return !f.Name.IsSet() && !f.MinAge.IsSet() && !f.Year.IsSet()
}

// Conditions returns the conditions of all set criteria.
func (f Filter) Conditions() ([]repository.Condition[Student], error) {
	conds := []repository.Condition[Student]{}

	if name, ok := f.Name.Get(); ok {
		caser := cases.Fold()
		want := caser.String(name)

		conds = append(conds, func(s Student) bool { return caser.String(s.Name) == want })
	}

	fields := []q.Cond{}

	if age, ok := f.MinAge.Get(); ok {
		fields = append(fields, q.Where("age").Gte(age))
	}

	if year, ok := f.Year.Get(); ok {
		fields = append(fields, q.Where("year").Is(year))
	}

	if len(fields) == 0 {
		return conds, nil
	}

	cond, err := q.Compile[Student](fields...)
	if err != nil {
		return nil, fmt.Errorf("could not compile filter: %w", err)
	}

	return append(conds, cond), nil
}

// Patch is a partial update of a Student. Only the set fields are changed.
type Patch struct {
	Name optional.Value[string] `json:"name" validate:"omitempty,min=1,max=50"`
	Age  optional.Value[int]    `json:"age"  validate:"omitempty,gt=0"`
	Year optional.Value[string] `json:"year" validate:"omitempty,min=1,max=10"`
}

func (p Patch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Age.IsSet() && !p.Year.IsSet()
}

// HasBlankName reports a name that is set but consists of white space only.
func (p Patch) HasBlankName() bool {
	name, ok := p.Name.Get()

	return ok && strings.TrimSpace(name) == ""
}

func (p Patch) Apply(student Student) Student {
	if name, ok := p.Name.Get(); ok {
		student.Name = name
	}

	if age, ok := p.Age.Get(); ok {
		student.Age = age
	}

	if year, ok := p.Year.Get(); ok {
		student.Year = year
	}

	return student
}
