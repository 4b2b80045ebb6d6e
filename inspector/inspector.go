package inspector

import "context"

// Inspector observes the items reaching one point of a tree. Inspect is
// called once per item in feed order; Finish is called at most once, after
// the last item. An error from either aborts the dispatch in progress and is
// returned to the feeder.
//
// The context carries request-scoped values such as trace spans. Dispatch
// never checks it for cancellation.
type Inspector[T any] interface {
	Inspect(ctx context.Context, item T) error
	Finish(ctx context.Context) error
}

// Func adapts a function to an Inspector whose Finish does nothing.
func Func[T any](fn func(ctx context.Context, item T) error) Inspector[T] {
	return FuncWithFinish(fn, nil)
}

// FuncWithFinish adapts a pair of functions to an Inspector. A nil finish
// function is treated as a no-op; a nil inspect function panics.
func FuncWithFinish[T any](inspect func(ctx context.Context, item T) error, finish func(ctx context.Context) error) Inspector[T] {
	mustFunc("func", inspect == nil, "inspect")
	return &funcInspector[T]{inspect: inspect, finish: finish}
}

type funcInspector[T any] struct {
	inspect func(ctx context.Context, item T) error
	finish  func(ctx context.Context) error
}

func (f *funcInspector[T]) Inspect(ctx context.Context, item T) error {
	return f.inspect(ctx, item)
}

func (f *funcInspector[T]) Finish(ctx context.Context) error {
	if f.finish == nil {
		return nil
	}
	return f.finish(ctx)
}

// Collector records every item it receives and whether it was finished.
type Collector[T any] struct {
	items    []T
	finished int
}

// NewCollector creates an empty Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

func (c *Collector[T]) Inspect(_ context.Context, item T) error {
	c.items = append(c.items, item)
	return nil
}

func (c *Collector[T]) Finish(_ context.Context) error {
	c.finished++
	return nil
}

// Items returns the items received so far, in arrival order.
func (c *Collector[T]) Items() []T { return c.items }

// Finished reports whether Finish has been called.
func (c *Collector[T]) Finished() bool { return c.finished > 0 }

// FinishCount returns how many times Finish has been called.
func (c *Collector[T]) FinishCount() int { return c.finished }

// Counter counts the items it receives.
type Counter[T any] struct {
	count    int
	finished bool
}

func (c *Counter[T]) Inspect(_ context.Context, _ T) error {
	c.count++
	return nil
}

func (c *Counter[T]) Finish(_ context.Context) error {
	c.finished = true
	return nil
}

// Count returns the number of items received.
func (c *Counter[T]) Count() int { return c.count }

// Finished reports whether Finish has been called.
func (c *Counter[T]) Finished() bool { return c.finished }
