package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/kbukum/inspectree/errors"
	"github.com/kbukum/inspectree/pair"
	"github.com/kbukum/inspectree/set"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPRF_Scores(t *testing.T) {
	ctx := context.Background()
	p := NewPRF[string]("exact")
	_ = p.Inspect(ctx, pair.Of(set.Of("PER", "LOC"), set.Of("PER", "ORG")))
	_ = p.Inspect(ctx, pair.Of(set.Of("LOC"), set.Of("LOC")))
	if err := p.Finish(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := p.Result()
	if r.Documents != 2 || r.TruePositives != 2 || r.FalsePositives != 1 || r.FalseNegatives != 1 {
		t.Fatalf("unexpected counts %+v", r)
	}
	if !near(r.Precision, 2.0/3) || !near(r.Recall, 2.0/3) || !near(r.F1, 2.0/3) {
		t.Fatalf("unexpected scores %+v", r)
	}
}

func TestPRF_EmptyIsPerfect(t *testing.T) {
	p := NewPRF[int]("empty")
	_ = p.Finish(context.Background())
	if r := p.Result(); r.Precision != 1 || r.Recall != 1 || r.F1 != 1 {
		t.Fatalf("expected perfect scores, got %+v", r)
	}
}

func TestPRF_NoOverlap(t *testing.T) {
	ctx := context.Background()
	p := NewPRF[int]("miss")
	_ = p.Inspect(ctx, pair.Of(set.Of(1), set.Of(2)))
	_ = p.Finish(ctx)
	if r := p.Result(); r.Precision != 0 || r.Recall != 0 || r.F1 != 0 {
		t.Fatalf("expected zero scores, got %+v", r)
	}
}

func TestPRF_InspectAfterFinish(t *testing.T) {
	ctx := context.Background()
	p := NewPRF[int]("late")
	_ = p.Finish(ctx)
	err := p.Inspect(ctx, pair.Of(set.Of(1), set.Of(1)))
	if !errors.HasCode(err, errors.ErrCodeInternal) {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Name: "exact", Documents: 1, TruePositives: 1, Precision: 1, Recall: 1, F1: 1}
	if err := Write(&buf, FormatText, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "F1=1.0000") || !strings.HasPrefix(buf.String(), "exact") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, Result{Name: "a"}, Result{Name: "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out []Result
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 || out[1].Name != "b" {
		t.Fatalf("unexpected results %+v", out)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml"); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}
