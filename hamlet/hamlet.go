// Package hamlet is a minimal "to be, or not to be" assertion helper
// for tests. Specifications gives two detectives, one that demands a
// condition holds and one that demands it does not.
package hamlet

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type Detective struct {
	t        *testing.T
	expected bool
}

// Specifications returns the (must_be, wont_be) detective pair for
// given test context.
func Specifications(t *testing.T) (*Detective, *Detective) {
	t.Helper()
	return &Detective{t, true}, &Detective{t, false}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	deeper := reflect.ValueOf(value)
	switch deeper.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice:
		return deeper.IsNil()
	}
	return false
}

func (it *Detective) report(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf(form, details...)
}

func (it *Detective) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.expected {
		it.report("Expected nil to be %v with value %#v", it.expected, value)
	}
}

func (it *Detective) True(value bool) {
	it.t.Helper()
	if value != it.expected {
		it.report("Expected %v to be %v", value, it.expected)
	}
}

func (it *Detective) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expected {
		it.report("Expected %#v vs. %#v equality to be %v", expected, actual, it.expected)
	}
}

// Text compares the fmt.Sprintf("%v") rendering of the value.
func (it *Detective) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.Equal(expected, fmt.Sprintf("%v", actual))
}

func (it *Detective) Contains(fragment string, actual string) {
	it.t.Helper()
	if strings.Contains(actual, fragment) != it.expected {
		it.report("Expected %q containment in %q to be %v", fragment, actual, it.expected)
	}
}

func (it *Detective) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		it.t.Helper()
		caught := recover()
		if (caught != nil) != it.expected {
			it.report("Expected panic to be %v, got %v", it.expected, caught)
		}
	}()
	todo()
}
