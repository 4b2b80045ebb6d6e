package inspector

import (
	"context"
	"fmt"
)

// kind is the closed set of node variants. Behaviour that differs between
// kinds lives in the traversal in graph.go, not in the vertices.
type kind uint8

const (
	kindInspection kind = iota
	kindTransform
	kindSetTransform
	kindSetFilter
)

func (k kind) String() string {
	switch k {
	case kindInspection:
		return "inspection"
	case kindTransform:
		return "transform"
	case kindSetTransform:
		return "set-transform"
	case kindSetFilter:
		return "set-filter"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// noProducer marks a root vertex.
const noProducer = -1

// vertex is one node of the arena. Items cross vertex boundaries as any;
// the typed Node handles guarantee that every value reaching apply or a
// sink has the type the closure was built for.
type vertex struct {
	id        int
	kind      kind
	producer  int
	apply     func(item any) (any, error)
	consumers []edge
}

// edge points either at another vertex or at an external inspector.
type edge struct {
	node int
	sink *sink
}

// sink is a type-erased Inspector.
type sink struct {
	inspect func(ctx context.Context, item any) error
	finish  func(ctx context.Context) error
}

func sinkOf[T any](insp Inspector[T]) *sink {
	return &sink{
		inspect: func(ctx context.Context, item any) error {
			v, _ := item.(T)
			return insp.Inspect(ctx, v)
		},
		finish: insp.Finish,
	}
}

// Node is a typed handle to a vertex of a Builder. Handles are cheap values;
// the zero Node is invalid and rejected by every DSL function.
type Node[T any] struct {
	b  *Builder
	id int
}

// ID returns the vertex index, unique within the builder.
func (n Node[T]) ID() int { return n.id }

// Valid reports whether n was produced by a Builder.
func (n Node[T]) Valid() bool { return n.b != nil }

// Builder returns the builder n belongs to.
func (n Node[T]) Builder() *Builder { return n.b }

// IsRoot reports whether n has no producer.
func (n Node[T]) IsRoot() bool {
	return n.b != nil && n.b.vertices[n.id].producer == noProducer
}

func (n Node[T]) String() string {
	if n.b == nil {
		return "node(invalid)"
	}
	return fmt.Sprintf("%s#%d", n.b.vertices[n.id].kind, n.id)
}
