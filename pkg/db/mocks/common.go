// Package mocks provides hand-written mocks for pkg/db interfaces.
//
// Each mock records its calls and delegates to the function set in Impl.
// Calling a method whose Impl is unset panics: the test has exercised a
// path it did not mean to.
package mocks

type CallLog[T any] []T

func (c CallLog[T]) Times() int {
	return len(c)
}
