// Package set holds small helpers for treating sorted, unique slices
// as sets. Coordinates and URLs flow through these.
package set

import (
	"cmp"
	"slices"
	"sort"
)

func Set[Entry cmp.Ordered](incoming []Entry) []Entry {
	intermediate := make(map[Entry]bool)
	for _, entry := range incoming {
		intermediate[entry] = true
	}
	result := make([]Entry, 0, len(intermediate))
	for entry := range intermediate {
		result = append(result, entry)
	}
	slices.Sort(result)
	return result
}

func Member[Entry cmp.Ordered](set []Entry, candidate Entry) bool {
	_, found := slices.BinarySearch(set, candidate)
	return found
}

func With[Entry cmp.Ordered](set []Entry, candidate Entry) []Entry {
	at, found := slices.BinarySearch(set, candidate)
	if found {
		return set
	}
	return slices.Insert(set, at, candidate)
}

func Keys[Key cmp.Ordered, Value any](source map[Key]Value) []Key {
	result := make([]Key, 0, len(source))
	for key := range source {
		result = append(result, key)
	}
	slices.Sort(result)
	return result
}

func SortedBy[Entry any](entries []Entry, less func(left, right Entry) bool) []Entry {
	result := make([]Entry, len(entries))
	copy(result, entries)
	sort.SliceStable(result, func(left, right int) bool {
		return less(result[left], result[right])
	})
	return result
}
