// Package scoring computes micro-averaged precision, recall and F1 over
// gold/system set pairs.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kbukum/inspectree/errors"
	"github.com/kbukum/inspectree/pair"
	"github.com/kbukum/inspectree/set"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Result holds the counts and derived scores of one PRF inspector.
type Result struct {
	Name           string  `json:"name"`
	Documents      int     `json:"documents"`
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// PRF is an inspector over (gold, system) set pairs. It accumulates
// true positives, false positives and false negatives; Finish derives the
// scores. Precision is 1 when nothing was predicted, recall is 1 when
// nothing was expected.
type PRF[T comparable] struct {
	result   Result
	finished bool
}

// NewPRF creates a PRF inspector reported under name.
func NewPRF[T comparable](name string) *PRF[T] {
	return &PRF[T]{result: Result{Name: name}}
}

func (p *PRF[T]) Inspect(_ context.Context, item pair.Pair[set.Set[T], set.Set[T]]) error {
	if p.finished {
		return errors.New(errors.ErrCodeInternal, "scoring: item after finish").
			WithDetail("inspector", p.result.Name)
	}
	gold, system := item.First(), item.Second()
	tp := set.Intersect(gold, system).Len()
	p.result.Documents++
	p.result.TruePositives += tp
	p.result.FalsePositives += system.Len() - tp
	p.result.FalseNegatives += gold.Len() - tp
	return nil
}

func (p *PRF[T]) Finish(_ context.Context) error {
	p.finished = true
	r := &p.result
	r.Precision = ratio(r.TruePositives, r.TruePositives+r.FalsePositives)
	r.Recall = ratio(r.TruePositives, r.TruePositives+r.FalseNegatives)
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return nil
}

// Result returns the accumulated result. Scores are zero until Finish.
func (p *PRF[T]) Result() Result { return p.result }

// Finished reports whether Finish has been called.
func (p *PRF[T]) Finished() bool { return p.finished }

func ratio(num, den int) float64 {
	if den == 0 {
		return 1
	}
	return float64(num) / float64(den)
}

// Write renders results in the given format.
func Write(w io.Writer, format string, results ...Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatText, "":
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%-12s docs=%d tp=%d fp=%d fn=%d P=%.4f R=%.4f F1=%.4f\n",
				r.Name, r.Documents, r.TruePositives, r.FalsePositives, r.FalseNegatives,
				r.Precision, r.Recall, r.F1); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.InvalidInput("format", fmt.Sprintf("unknown report format %q", format))
	}
}
