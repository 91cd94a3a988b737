package domain_test

import "github.com/go-arrower/recordstore/contexts/school/internal/domain"

var (
	john = domain.Student{StudentID: 1, Name: "John", Age: 17, Year: "12A"}
	tim  = domain.Student{StudentID: 2, Name: "Tim", Age: 15, Year: "10D"}
	anna = domain.Student{StudentID: 3, Name: "Änna", Age: 16, Year: "12A"}
)

func class() []domain.Student {
	return []domain.Student{john, tim, anna}
}
