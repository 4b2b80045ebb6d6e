package inspector

import "context"

// Iterator provides pull-based sequential access to a stream of values,
// such as documents read from a corpus.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Drain pulls every value from it into feed and then finishes the feed. It
// stops at the first error from the iterator or from dispatch; in that case
// Finish is not called. The iterator is always closed.
func Drain[T any](ctx context.Context, it Iterator[T], feed *Feed[T]) (err error) {
	defer func() {
		if cerr := it.Close(); err == nil {
			err = cerr
		}
	}()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return feed.Finish(ctx)
		}
		if err := feed.Inspect(ctx, val); err != nil {
			return err
		}
	}
}

// SliceIterator returns an Iterator over items.
func SliceIterator[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
