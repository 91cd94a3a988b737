// Package aassert has assertions that go beyond stretchr/testify/assert
// and follow its design as close as possible.
package aassert
