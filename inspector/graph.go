package inspector

import (
	"context"

	"github.com/kbukum/inspectree/errors"
	"github.com/kbukum/inspectree/logger"
)

// Graph is a frozen inspector tree produced by Builder.Build. Its topology
// never changes; only the per-root feed state does.
type Graph struct {
	id       string
	name     string
	owner    *Builder
	log      *logger.Logger
	vertices []vertex
	done     []bool
	fed      []int
}

// ID returns the unique id assigned when the graph was built.
func (g *Graph) ID() string { return g.id }

// Name returns the name given to the builder.
func (g *Graph) Name() string { return g.name }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// dispatch pushes one item into vertex id and on through every consumer,
// depth first, in registration order. The first error stops the traversal.
func (g *Graph) dispatch(ctx context.Context, id int, item any) error {
	v := &g.vertices[id]

	out := item
	switch v.kind {
	case kindInspection:
	case kindTransform, kindSetTransform, kindSetFilter:
		var err error
		out, err = v.apply(item)
		if err != nil {
			return errors.DispatchFailed(id, v.kind.String(), err)
		}
	}

	for _, e := range v.consumers {
		if e.sink != nil {
			if err := e.sink.inspect(ctx, out); err != nil {
				return errors.DispatchFailed(id, "inspector", err)
			}
			continue
		}
		if err := g.dispatch(ctx, e.node, out); err != nil {
			return err
		}
	}
	return nil
}

// finish propagates end of stream from vertex id, in the same order items
// travel.
func (g *Graph) finish(ctx context.Context, id int) error {
	for _, e := range g.vertices[id].consumers {
		if e.sink != nil {
			if err := e.sink.finish(ctx); err != nil {
				return errors.DispatchFailed(id, "inspector", err)
			}
			continue
		}
		if err := g.finish(ctx, e.node); err != nil {
			return err
		}
	}
	return nil
}

// Feed pushes items of type T into one root of a Graph.
type Feed[T any] struct {
	g    *Graph
	root int
}

// Open returns the feed for root. root must be a node created by Input or
// PairedInput on the builder g was built from, before Build was called.
// Opening the same root twice returns feeds that share one finish state.
func Open[T any](g *Graph, root Node[T]) (*Feed[T], error) {
	if g == nil {
		return nil, errors.InvalidInput("graph", "open: graph is nil")
	}
	if !root.Valid() {
		return nil, errors.InvalidInput("node", "open: zero Node handle")
	}
	if root.b != g.owner || root.id >= len(g.vertices) {
		return nil, errors.ForeignNode("open", root.id)
	}
	if g.vertices[root.id].producer != noProducer {
		return nil, errors.NotRoot(root.id)
	}
	return &Feed[T]{g: g, root: root.id}, nil
}

// MustOpen is Open that panics on error. It suits setup code where the
// root handle is known to be valid.
func MustOpen[T any](g *Graph, root Node[T]) *Feed[T] {
	f, err := Open(g, root)
	if err != nil {
		panic(err)
	}
	return f
}

// Inspect dispatches item to every node and inspector reachable from the
// root before returning. Calling it after Finish returns an error with code
// errors.ErrCodeFeedFinished and dispatches nothing.
func (f *Feed[T]) Inspect(ctx context.Context, item T) error {
	if f.g.done[f.root] {
		return errors.FeedFinished(f.root, "inspect")
	}
	f.g.fed[f.root]++
	return f.g.dispatch(ctx, f.root, item)
}

// InspectAll feeds items in order, stopping at the first error.
func (f *Feed[T]) InspectAll(ctx context.Context, items ...T) error {
	for _, item := range items {
		if err := f.Inspect(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Finish propagates end of stream to every reachable inspector. The root is
// marked finished even when an inspector fails, so Finish runs at most once.
func (f *Feed[T]) Finish(ctx context.Context) error {
	if f.g.done[f.root] {
		return errors.FeedFinished(f.root, "finish")
	}
	f.g.done[f.root] = true

	if err := f.g.finish(ctx, f.root); err != nil {
		return err
	}
	f.g.log.WithContext(ctx).Debug("inspector root finished", logger.Fields(
		logger.FieldNode, f.root,
		logger.FieldItems, f.g.fed[f.root],
	))
	return nil
}

// Count returns the number of items fed so far, including items whose
// dispatch failed.
func (f *Feed[T]) Count() int { return f.g.fed[f.root] }

// Finished reports whether Finish has been called on this root.
func (f *Feed[T]) Finished() bool { return f.g.done[f.root] }
