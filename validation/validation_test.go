package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/inspectree/errors"
)

type reportConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type sampleConfig struct {
	Input      string       `mapstructure:"input" validate:"required"`
	SampleRate float64      `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Report     reportConfig `mapstructure:"report"`
	MaxLabels  int          `validate:"min=0"`
}

func TestValidate_Valid(t *testing.T) {
	cfg := sampleConfig{Input: "corpus.yml", SampleRate: 0.5, Report: reportConfig{Format: "json"}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	cfg := sampleConfig{SampleRate: 2, Report: reportConfig{Format: "xml"}}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"input: is required", "sample_rate: must be <= 1", "report.format: must be one of: text json"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}

	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	if err := Validate(42); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{"MaxLabels": "max_labels", "input": "input", "A": "a"}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
