package hexcalc

import (
	"strings"
	"testing"
)

func TestProcessCommentAcceptedVerbatim(t *testing.T) {
	env := NewBindingEnv()
	for _, src := range []string{"// hello", "   // x := ) ( garbage ?? "} {
		outcome := ProcessStatement(src, env)
		if outcome.Status != Accepted || outcome.Message != "" {
			t.Errorf("ProcessStatement(%q) = %+v; want accepted, no message", src, outcome)
		}
	}
	if env.Len() != 0 {
		t.Error("comment statements must not touch the variable table")
	}
}

func TestProcessAssignment(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("abc := 1a5 + 2f", env)
	if outcome.Status != Accepted || outcome.Message != "" {
		t.Fatalf("outcome = %+v; want clean accept", outcome)
	}
	got, ok := env.LookupVariable("abc")
	if !ok || got != 0x1a5+0x2f {
		t.Errorf("abc = %d, %v; want %d", got, ok, 0x1a5+0x2f)
	}
}

func TestProcessAssignmentSemanticWarningDoesNotAssign(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("_var := 0ff * (x - 1b)", env)
	if outcome.Status != Accepted {
		t.Fatalf("outcome = %+v; want accepted with warning", outcome)
	}
	if !strings.Contains(outcome.Message, "undefined variable") || !strings.Contains(outcome.Message, "x") {
		t.Errorf("message = %q; want undefined variable x", outcome.Message)
	}
	if _, ok := env.LookupVariable("_var"); ok {
		t.Error("_var was assigned despite the semantic failure")
	}
}

func TestProcessAssignmentFirstUndefinedNamed(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("new := a + b * 2", env)
	if outcome.Status != Accepted || !strings.Contains(outcome.Message, `"a"`) {
		t.Fatalf("outcome = %+v; want warning naming a", outcome)
	}
	if _, ok := env.LookupVariable("new"); ok {
		t.Error("new was assigned despite the semantic failure")
	}
}

func TestProcessAssignmentDivisionByZeroWarning(t *testing.T) {
	env := NewBindingEnv()
	env.AddBinding("d", 0)
	outcome := ProcessStatement("q := 5 / d", env)
	if outcome.Status != Accepted || !strings.Contains(outcome.Message, "division by zero") {
		t.Fatalf("outcome = %+v; want division-by-zero warning", outcome)
	}
	if _, ok := env.LookupVariable("q"); ok {
		t.Error("q was assigned despite the semantic failure")
	}
}

func TestProcessAssignmentSyntaxRejected(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("undef := 5 + ", env)
	if outcome.Status != Rejected || !strings.Contains(outcome.Message, "incomplete") {
		t.Fatalf("outcome = %+v; want rejection mentioning incomplete", outcome)
	}
	if env.Len() != 0 {
		t.Error("rejected statement mutated the variable table")
	}
}

func TestProcessAssignmentTargetRules(t *testing.T) {
	tests := []struct {
		src     string
		wantMsg string
	}{
		{"Xyz := 1", "uppercase"},
		{"9lives := 1", "must be identifier"},
		{" := 1", "must be identifier"},
		{"a b := 1", "must be identifier"},
	}
	env := NewBindingEnv()
	for _, tc := range tests {
		outcome := ProcessStatement(tc.src, env)
		if outcome.Status != Rejected || !strings.Contains(outcome.Message, tc.wantMsg) {
			t.Errorf("ProcessStatement(%q) = %+v; want rejection mentioning %q", tc.src, outcome, tc.wantMsg)
		}
	}
	if env.Len() != 0 {
		t.Error("rejected statements mutated the variable table")
	}
}

func TestProcessRejectsForeignTokensInExpression(t *testing.T) {
	env := NewBindingEnv()
	tests := []struct {
		src     string
		wantMsg string
	}{
		{"x := 1 ? 2", "unrecognized character"},
		{"x := 1 // not here", "comment not allowed"},
		{"1 + 2 // not here", "comment not allowed"},
		{"1 ? 2", "unrecognized character"},
	}
	for _, tc := range tests {
		outcome := ProcessStatement(tc.src, env)
		if outcome.Status != Rejected || !strings.Contains(outcome.Message, tc.wantMsg) {
			t.Errorf("ProcessStatement(%q) = %+v; want rejection mentioning %q", tc.src, outcome, tc.wantMsg)
		}
	}
}

func TestProcessBareExpression(t *testing.T) {
	env := NewBindingEnv()
	env.AddBinding("x", 4)
	outcome := ProcessStatement("x * (2 + 3)", env)
	if outcome.Status != Accepted || outcome.Message != "" {
		t.Fatalf("outcome = %+v; want clean accept", outcome)
	}
	outcome = ProcessStatement("y + 1", env)
	if outcome.Status != Accepted || !strings.Contains(outcome.Message, "undefined") {
		t.Fatalf("outcome = %+v; want accepted with undefined warning", outcome)
	}
}

// A lone identifier is accepted on casing alone; the variable table is not
// consulted on the single-token path.
func TestProcessSingleTokenShortcut(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("neverassigned", env)
	if outcome.Status != Accepted || outcome.Message != "" {
		t.Fatalf("lone identifier outcome = %+v; want clean accept", outcome)
	}
	outcome = ProcessStatement("1a5", env)
	if outcome.Status != Accepted {
		t.Fatalf("lone literal outcome = %+v; want accept", outcome)
	}
	outcome = ProcessStatement("?", env)
	if outcome.Status != Rejected {
		t.Fatalf("lone unknown outcome = %+v; want rejection", outcome)
	}
}

func TestProcessEmptyStatement(t *testing.T) {
	env := NewBindingEnv()
	outcome := ProcessStatement("   ", env)
	if outcome.Status != Accepted || outcome.Message != "" {
		t.Fatalf("outcome = %+v; want accept for empty statement", outcome)
	}
}
