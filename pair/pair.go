// Package pair provides an immutable two-sided value used to push gold and
// system output (or key and test value) through the same inspector tree.
package pair

import "fmt"

// Pair is an immutable (first, second) tuple. The zero value is a pair of
// zero values. Pairs of comparable types compare with ==.
type Pair[A, B any] struct {
	first  A
	second B
}

// Of creates a Pair.
func Of[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{first: first, second: second}
}

// First returns the left-hand value.
func (p Pair[A, B]) First() A { return p.first }

// Second returns the right-hand value.
func (p Pair[A, B]) Second() B { return p.second }

// Key returns the left-hand value, conventionally the gold standard.
func (p Pair[A, B]) Key() A { return p.first }

// Test returns the right-hand value, conventionally the system output.
func (p Pair[A, B]) Test() B { return p.second }

// Swap returns a new pair with the sides exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{first: p.second, second: p.first}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// Equal compares two pairs side by side with the given equality functions.
// Use it when A or B is not comparable.
func Equal[A, B any](x, y Pair[A, B], eqA func(A, A) bool, eqB func(B, B) bool) bool {
	return eqA(x.first, y.first) && eqB(x.second, y.second)
}

// MapFirst applies f to the first value, leaving the second untouched.
func MapFirst[A, B, T any](p Pair[A, B], f func(A) T) Pair[T, B] {
	return Pair[T, B]{first: f(p.first), second: p.second}
}

// MapSecond applies f to the second value, leaving the first untouched.
func MapSecond[A, B, T any](p Pair[A, B], f func(B) T) Pair[A, T] {
	return Pair[A, T]{first: p.first, second: f(p.second)}
}

// MapBoth applies f to both values. Both sides share the element type F.
func MapBoth[F, T any](p Pair[F, F], f func(F) T) Pair[T, T] {
	return Pair[T, T]{first: f(p.first), second: f(p.second)}
}

// MapEach applies f to the first value and g to the second.
func MapEach[A, B, T, U any](p Pair[A, B], f func(A) T, g func(B) U) Pair[T, U] {
	return Pair[T, U]{first: f(p.first), second: g(p.second)}
}

// OnFirst lifts f to a function over pairs that maps the first value only.
func OnFirst[A, B, T any](f func(A) T) func(Pair[A, B]) Pair[T, B] {
	return func(p Pair[A, B]) Pair[T, B] { return MapFirst(p, f) }
}

// OnSecond lifts f to a function over pairs that maps the second value only.
func OnSecond[A, B, T any](f func(B) T) func(Pair[A, B]) Pair[A, T] {
	return func(p Pair[A, B]) Pair[A, T] { return MapSecond(p, f) }
}

// OnBoth lifts f to a function over pairs that maps both values.
func OnBoth[F, T any](f func(F) T) func(Pair[F, F]) Pair[T, T] {
	return func(p Pair[F, F]) Pair[T, T] { return MapBoth(p, f) }
}

// OnEach lifts f and g to a function over pairs, f on the first value and g
// on the second.
func OnEach[A, B, T, U any](f func(A) T, g func(B) U) func(Pair[A, B]) Pair[T, U] {
	return func(p Pair[A, B]) Pair[T, U] { return MapEach(p, f, g) }
}
