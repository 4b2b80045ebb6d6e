package inspector

import (
	"slices"

	"github.com/google/uuid"

	"github.com/kbukum/inspectree/errors"
	"github.com/kbukum/inspectree/logger"
)

// Option configures a Builder.
type Option func(*options)

type options struct {
	name string
	log  *logger.Logger
}

// WithName names the graphs produced by the builder in log lines.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger used for build and finish events.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Builder owns the node arena while a tree is being wired. Vertices are
// append-only and a consumer is always created after its producer, so the
// arena cannot contain a cycle.
type Builder struct {
	name     string
	log      *logger.Logger
	vertices []*vertex
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	o := options{name: "inspector-tree"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("inspector")
	}
	return &Builder{name: o.name, log: o.log}
}

// Len returns the number of vertices wired so far.
func (b *Builder) Len() int { return len(b.vertices) }

// Build freezes the current topology into a Graph. The graph owns a copy of
// the arena: wiring done on b afterwards never reaches it. b stays usable
// and may be built again.
func (b *Builder) Build() *Graph {
	g := &Graph{
		id:       uuid.NewString(),
		name:     b.name,
		owner:    b,
		vertices: make([]vertex, len(b.vertices)),
		done:     make([]bool, len(b.vertices)),
		fed:      make([]int, len(b.vertices)),
	}
	roots, edges := 0, 0
	for i, v := range b.vertices {
		g.vertices[i] = *v
		g.vertices[i].consumers = slices.Clone(v.consumers)
		if v.producer == noProducer {
			roots++
		}
		edges += len(v.consumers)
	}
	g.log = b.log.WithFields(logger.Fields(logger.FieldGraphID, g.id, logger.FieldGraph, g.name))
	g.log.Debug("inspector graph built", logger.Fields(
		"nodes", len(g.vertices),
		"roots", roots,
		"edges", edges,
	))
	return g
}

func (b *Builder) add(k kind, producer int, apply func(any) (any, error)) int {
	id := len(b.vertices)
	b.vertices = append(b.vertices, &vertex{
		id:       id,
		kind:     k,
		producer: producer,
		apply:    apply,
	})
	if producer != noProducer {
		p := b.vertices[producer]
		p.consumers = append(p.consumers, edge{node: id})
	}
	return id
}

func (b *Builder) attach(id int, s *sink) {
	v := b.vertices[id]
	v.consumers = append(v.consumers, edge{node: -1, sink: s})
}

// derive creates a vertex consuming src and returns its typed handle.
func derive[In, Out any](op string, src Node[In], k kind, apply func(any) (any, error)) Node[Out] {
	mustNode(op, src)
	return Node[Out]{b: src.b, id: src.b.add(k, src.id, apply)}
}

func mustNode[T any](op string, n Node[T]) {
	if !n.Valid() {
		panic(errors.InvalidInput("node", op+": zero Node handle").WithDetail("operation", op))
	}
	if n.id < 0 || n.id >= len(n.b.vertices) {
		panic(errors.ForeignNode(op, n.id))
	}
}

func mustFunc(op string, isNil bool, field string) {
	if isNil {
		panic(errors.InvalidInput(field, op+": "+field+" is nil").WithDetail("operation", op))
	}
}
