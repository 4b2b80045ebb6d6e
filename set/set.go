// Package set provides an immutable, unordered collection of distinct
// comparable values. Sets are the usual shape of each side of a scoring pair:
// the mentions, spans or labels produced by the gold standard and by the
// system under test.
package set

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Set is an immutable set of T. The zero value is the empty set. Operations
// that change membership return a new Set and leave the receiver untouched,
// so one set value can safely be handed to several consumers.
type Set[T comparable] struct {
	m map[T]struct{}
}

// Of creates a set from the given items. Duplicates collapse.
func Of[T comparable](items ...T) Set[T] {
	m := make(map[T]struct{}, len(items))
	for _, item := range items {
		m[item] = struct{}{}
	}
	return Set[T]{m: m}
}

// FromSlice creates a set from a slice. Duplicates collapse.
func FromSlice[T comparable](items []T) Set[T] {
	return Of(items...)
}

// Len returns the number of distinct elements.
func (s Set[T]) Len() int { return len(s.m) }

// IsEmpty reports whether the set has no elements.
func (s Set[T]) IsEmpty() bool { return len(s.m) == 0 }

// Contains reports whether item is a member.
func (s Set[T]) Contains(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Items returns the elements in unspecified order.
func (s Set[T]) Items() []T {
	return slices.Collect(maps.Keys(s.m))
}

// With returns a new set holding the receiver's elements plus items.
func (s Set[T]) With(items ...T) Set[T] {
	m := maps.Clone(s.m)
	if m == nil {
		m = make(map[T]struct{}, len(items))
	}
	for _, item := range items {
		m[item] = struct{}{}
	}
	return Set[T]{m: m}
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for item := range s.m {
		if _, ok := other.m[item]; !ok {
			return false
		}
	}
	return true
}

func (s Set[T]) String() string {
	parts := make([]string, 0, len(s.m))
	for item := range s.m {
		parts = append(parts, fmt.Sprint(item))
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	items := s.Items()
	slices.Sort(items)
	return items
}

// Map applies f to every element and collects the results into a new set.
// Elements that map to the same result collapse into one.
func Map[F, T comparable](s Set[F], f func(F) T) Set[T] {
	m := make(map[T]struct{}, len(s.m))
	for item := range s.m {
		m[f(item)] = struct{}{}
	}
	return Set[T]{m: m}
}

// Filter returns the elements for which pred is true.
func Filter[T comparable](s Set[T], pred func(T) bool) Set[T] {
	m := make(map[T]struct{})
	for item := range s.m {
		if pred(item) {
			m[item] = struct{}{}
		}
	}
	return Set[T]{m: m}
}

// Union returns the elements present in either set.
func Union[T comparable](a, b Set[T]) Set[T] {
	return a.With(b.Items()...)
}

// Intersect returns the elements present in both sets.
func Intersect[T comparable](a, b Set[T]) Set[T] {
	return Filter(a, b.Contains)
}

// Difference returns the elements of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	return Filter(a, func(item T) bool { return !b.Contains(item) })
}
