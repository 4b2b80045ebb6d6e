package main

import (
	"strings"

	"github.com/kbukum/inspectree/inspector"
	"github.com/kbukum/inspectree/internal/corpus"
	"github.com/kbukum/inspectree/internal/scoring"
	"github.com/kbukum/inspectree/logger"
	"github.com/kbukum/inspectree/observability"
	"github.com/kbukum/inspectree/set"
)

// tree is the scoring tree for one run.
type tree struct {
	graph  *inspector.Graph
	root   inspector.Node[corpus.Labels]
	docs   *inspector.Counter[corpus.Labels]
	scores []*scoring.PRF[string]
}

// results returns the scores in registration order.
func (t *tree) results() []scoring.Result {
	out := make([]scoring.Result, len(t.scores))
	for i, s := range t.scores {
		out[i] = s.Result()
	}
	return out
}

// buildTree wires the paired label input, the optional label filter and one
// PRF inspector per scoring variant. metrics may be nil.
func buildTree(cfg *AppConfig, log *logger.Logger, metrics *observability.Metrics) *tree {
	b := inspector.NewBuilder(inspector.WithName(cfg.Name), inspector.WithLogger(log))
	root := inspector.PairedInputOf[set.Set[string]](b)

	src := root
	if len(cfg.LabelFilter) > 0 {
		allowed := set.FromSlice(cfg.LabelFilter)
		src = inspector.FilterBothSets(root, allowed.Contains)
	}

	t := &tree{root: root, docs: &inspector.Counter[corpus.Labels]{}}
	exact := scoring.NewPRF[string]("exact")
	t.scores = append(t.scores, exact)
	inspector.Inspect(src).With(t.docs, decorate[corpus.Labels](exact, "exact", log, metrics))

	if cfg.Report.Lowercase {
		lower := scoring.NewPRF[string]("lowercase")
		t.scores = append(t.scores, lower)
		inspector.Inspect(inspector.TransformBothSets(src, strings.ToLower)).
			With(decorate[corpus.Labels](lower, "lowercase", log, metrics))
	}

	t.graph = b.Build()
	return t
}

// decorate adds logging, tracing and, when available, metrics around insp.
func decorate[T any](insp inspector.Inspector[T], name string, log *logger.Logger, metrics *observability.Metrics) inspector.Inspector[T] {
	if metrics != nil {
		insp = inspector.WithMetrics(insp, metrics, name)
	}
	insp = inspector.WithTracing(insp, serviceName, name)
	return inspector.WithLogging(insp, log, name)
}
