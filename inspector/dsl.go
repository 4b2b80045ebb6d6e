package inspector

import (
	"reflect"

	"github.com/kbukum/inspectree/errors"
	"github.com/kbukum/inspectree/pair"
	"github.com/kbukum/inspectree/set"
)

// Input creates an unattached root node for items of type T.
func Input[T any](b *Builder) Node[T] {
	if b == nil {
		panic(errors.InvalidInput("builder", "input: builder is nil"))
	}
	return Node[T]{b: b, id: b.add(kindInspection, noProducer, nil)}
}

// PairedInput creates a root node for pairs whose sides have different types,
// such as a gold key and a system response.
func PairedInput[A, B any](b *Builder) Node[pair.Pair[A, B]] {
	return Input[pair.Pair[A, B]](b)
}

// PairedInputOf creates a root node for pairs whose sides share one type.
func PairedInputOf[T any](b *Builder) Node[pair.Pair[T, T]] {
	return Input[pair.Pair[T, T]](b)
}

// Transformed wires a node that applies f to every item of src and forwards
// the result.
func Transformed[In, Out any](src Node[In], f func(In) Out) Node[Out] {
	mustFunc("transformed", f == nil, "func")
	return derive[In, Out]("transformed", src, kindTransform, func(item any) (any, error) {
		v, _ := item.(In)
		return f(v), nil
	})
}

// TransformedErr is Transformed for fallible functions. An error from f
// aborts the dispatch of that item and is returned to the feeder.
func TransformedErr[In, Out any](src Node[In], f func(In) (Out, error)) Node[Out] {
	mustFunc("transformed", f == nil, "func")
	return derive[In, Out]("transformed", src, kindTransform, func(item any) (any, error) {
		v, _ := item.(In)
		return f(v)
	})
}

// TransformBoth applies f to both sides of every pair.
func TransformBoth[F, T any](src Node[pair.Pair[F, F]], f func(F) T) Node[pair.Pair[T, T]] {
	mustFunc("transformBoth", f == nil, "func")
	return Transformed(src, pair.OnBoth(f))
}

// TransformLeft applies f to the first side of every pair. The second side
// keeps its value and type.
func TransformLeft[A, B, T any](src Node[pair.Pair[A, B]], f func(A) T) Node[pair.Pair[T, B]] {
	mustFunc("transformLeft", f == nil, "func")
	return Transformed(src, pair.OnFirst[A, B](f))
}

// TransformRight applies f to the second side of every pair. The first side
// keeps its value and type.
func TransformRight[A, B, T any](src Node[pair.Pair[A, B]], f func(B) T) Node[pair.Pair[A, T]] {
	mustFunc("transformRight", f == nil, "func")
	return Transformed(src, pair.OnSecond[A](f))
}

// TransformBothSets applies f to every element of both sets of every pair.
// Each output side is a set, so elements mapping to the same value collapse.
func TransformBothSets[F, T comparable](src Node[pair.Pair[set.Set[F], set.Set[F]]], f func(F) T) Node[pair.Pair[set.Set[T], set.Set[T]]] {
	mustFunc("transformBothSets", f == nil, "func")
	return derive[pair.Pair[set.Set[F], set.Set[F]], pair.Pair[set.Set[T], set.Set[T]]](
		"transformBothSets", src, kindSetTransform,
		func(item any) (any, error) {
			p, _ := item.(pair.Pair[set.Set[F], set.Set[F]])
			return pair.Of(set.Map(p.First(), f), set.Map(p.Second(), f)), nil
		})
}

// FilterBothSets keeps, on each side of every pair independently, only the
// elements satisfying pred.
func FilterBothSets[F comparable](src Node[pair.Pair[set.Set[F], set.Set[F]]], pred func(F) bool) Node[pair.Pair[set.Set[F], set.Set[F]]] {
	mustFunc("filterBothSets", pred == nil, "predicate")
	return derive[pair.Pair[set.Set[F], set.Set[F]], pair.Pair[set.Set[F], set.Set[F]]](
		"filterBothSets", src, kindSetFilter,
		func(item any) (any, error) {
			p, _ := item.(pair.Pair[set.Set[F], set.Set[F]])
			return pair.Of(set.Filter(p.First(), pred), set.Filter(p.Second(), pred)), nil
		})
}

// InspectionBuilder attaches inspectors below a producer node. Obtain one
// with Inspect.
type InspectionBuilder[T any] struct {
	src Node[T]
}

// Inspect starts an attachment on n:
//
//	inspector.Inspect(n).With(counter, printer)
func Inspect[T any](n Node[T]) InspectionBuilder[T] {
	mustNode("inspect", n)
	return InspectionBuilder[T]{src: n}
}

// With wires a fresh inspection node below the producer and registers the
// inspectors on it in the given order. The returned node can be inspected
// further or used as the input of another transform. Passing the same
// inspector twice delivers every item to it twice.
func (ib InspectionBuilder[T]) With(inspectors ...Inspector[T]) Node[T] {
	return ib.WithAll(inspectors)
}

// WithAll is With for a slice of inspectors.
func (ib InspectionBuilder[T]) WithAll(inspectors []Inspector[T]) Node[T] {
	for _, insp := range inspectors {
		mustFunc("with", isNilInspector(insp), "inspector")
	}
	n := derive[T, T]("with", ib.src, kindInspection, nil)
	for _, insp := range inspectors {
		n.b.attach(n.id, sinkOf(insp))
	}
	return n
}

// isNilInspector also catches typed nil pointers and funcs held in a non-nil
// interface.
func isNilInspector[T any](insp Inspector[T]) bool {
	if insp == nil {
		return true
	}
	switch v := reflect.ValueOf(insp); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
