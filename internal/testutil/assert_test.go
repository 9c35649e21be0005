package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recorder captures failures so the failing paths of the helpers can be
// checked without failing this test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertHelpers(t *testing.T) {
	errBase := errors.New("base")

	tests := []struct {
		name     string
		run      func(tb testing.TB)
		wantFail string // empty when the assertion should pass
	}{
		{"equal values", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{1, 2}) }, ""},
		{"equal nils", func(tb testing.TB) { AssertEqual(tb, nil, nil) }, ""},
		{"unequal values", func(tb testing.TB) { AssertEqual(tb, 41, 42) }, "mismatch (-want +got)"},
		{"unequal with message", func(tb testing.TB) { AssertEqual(tb, "a", "b", "field %s", "x") }, "field x: mismatch"},

		{"error is wrapped sentinel", func(tb testing.TB) { AssertErrorIs(tb, fmt.Errorf("ctx: %w", errBase), errBase) }, ""},
		{"error is other", func(tb testing.TB) { AssertErrorIs(tb, errors.New("other"), errBase) }, "error = other, want base"},
		{"error is nil", func(tb testing.TB) { AssertErrorIs(tb, nil, errBase, "decode") }, "decode: error = <nil>"},

		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, ""},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, errBase, "load") }, "load: unexpected error: base"},

		{"expected error", func(tb testing.TB) { AssertError(tb, errBase) }, ""},
		{"missing error", func(tb testing.TB) { AssertError(tb, nil) }, "expected error but got nil"},

		{"true", func(tb testing.TB) { AssertTrue(tb, len("abc") == 3) }, ""},
		{"false", func(tb testing.TB) { AssertTrue(tb, false, "flag") }, "flag: expected true but got false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.run(rec)

			if tt.wantFail == "" {
				if len(rec.failures) != 0 {
					t.Errorf("unexpected failures: %q", rec.failures)
				}
				return
			}
			if len(rec.failures) != 1 {
				t.Fatalf("failures = %q; want exactly one", rec.failures)
			}
			if !strings.Contains(rec.failures[0], tt.wantFail) {
				t.Errorf("failure %q does not mention %q", rec.failures[0], tt.wantFail)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %d (%s)", 3, "Nf3"}, "move 3 (Nf3)"},
		{"non-string format", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
