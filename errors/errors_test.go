package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Message != "boom" {
		t.Errorf("expected message 'boom', got %q", err.Message)
	}
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}

func TestAppError_InvalidInput_Field(t *testing.T) {
	err := InvalidInput("func", "transform function is nil")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "func" {
		t.Errorf("expected field=func, got %v", err.Details["field"])
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "nothing")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_DispatchFailed_Unwrap(t *testing.T) {
	cause := stderrors.New("bad item")
	err := DispatchFailed(3, "transform", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if err.Details["node"] != 3 || err.Details["kind"] != "transform" {
		t.Errorf("unexpected details %v", err.Details)
	}
	if !strings.Contains(err.Error(), "bad item") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeInternal, "x").WithDetails(map[string]any{"a": 1}).WithDetail("b", 2)
	if err.Details["a"] != 1 || err.Details["b"] != 2 {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("feeding: %w", FeedFinished(0, "inspect"))
	if CodeOf(err) != ErrCodeFeedFinished {
		t.Errorf("expected FEED_FINISHED, got %q", CodeOf(err))
	}
	if !HasCode(err, ErrCodeFeedFinished) {
		t.Error("expected HasCode to match")
	}
	if CodeOf(stderrors.New("plain")) != "" {
		t.Error("expected empty code for a plain error")
	}
}

func TestAsAppError(t *testing.T) {
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("plain error should not convert")
	}
	appErr, ok := AsAppError(NotRoot(4))
	if !ok || appErr.Code != ErrCodeNotRoot {
		t.Fatalf("expected NOT_ROOT, got %v", appErr)
	}
	if !IsAppError(ForeignNode("open", 1)) {
		t.Error("expected IsAppError")
	}
}
