// Package inspector builds inspector trees: small directed acyclic graphs
// through which evaluation items are pushed to several observers at once.
// Scorers use them to compute many related statistics from one pass over a
// corpus.
//
// A tree is wired once with a Builder and the DSL functions in this package,
// frozen with Builder.Build, and then fed through a typed Feed opened on each
// root. Every item is dispatched synchronously, depth first, to every
// reachable node and inspector in registration order before Inspect
// returns. Finish propagates the same way, exactly once per root.
//
// Node kinds:
//
//   - inspection nodes pass their input through unchanged (roots and every
//     Inspect(...).With(...) attachment)
//   - transform nodes apply a function and forward the result
//     (Transformed, TransformBoth, TransformLeft, TransformRight)
//   - set transform and set filter nodes map or filter both sides of a pair
//     of sets element-wise (TransformBothSets, FilterBothSets)
//
// # Usage
//
//	b := inspector.NewBuilder()
//	in := inspector.Input[int](b)
//	inspector.Inspect(in).With(printer)
//	plusTwo := inspector.Transformed(in, func(x int) int { return x + 2 })
//	inspector.Inspect(plusTwo).With(printer, mailer)
//
//	g := b.Build()
//	feed, err := inspector.Open(g, in)
//	for _, x := range ints {
//	    if err := feed.Inspect(ctx, x); err != nil {
//	        return err
//	    }
//	}
//	return feed.Finish(ctx)
//
// Graphs are not safe for concurrent use.
package inspector
