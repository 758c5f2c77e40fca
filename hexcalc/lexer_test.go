package hexcalc

import (
	"reflect"
	"testing"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func wantKinds(t *testing.T, src string, want []TokenKind) []Token {
	t.Helper()
	got := Tokenize(src)
	if !reflect.DeepEqual(kinds(got), want) {
		t.Fatalf("source %q\nwant kinds %v\ngot kinds  %v (tokens %v)", src, want, kinds(got), got)
	}
	return got
}

func TestTokenizeExpression(t *testing.T) {
	tokens := wantKinds(t, "abc := 1a5 + 2f", []TokenKind{IDENT, ASSIGN, HEXNUM, OPERATOR, HEXNUM})
	if tokens[0].Text != "abc" || tokens[0].Offset != 0 {
		t.Errorf("first token = %+v; want abc at 0", tokens[0])
	}
	if tokens[2].Text != "1a5" || tokens[2].Offset != 7 {
		t.Errorf("literal token = %+v; want 1a5 at 7", tokens[2])
	}
	if tokens[3].Text != "+" || tokens[3].Offset != 11 {
		t.Errorf("operator token = %+v; want + at 11", tokens[3])
	}
}

func TestTokenizeParensAndOperators(t *testing.T) {
	wantKinds(t, "(x - 1b) * 2 / 3",
		[]TokenKind{LPAREN, IDENT, OPERATOR, HEXNUM, RPAREN, OPERATOR, HEXNUM, OPERATOR, HEXNUM})
}

func TestTokenizeCommentConsumesRest(t *testing.T) {
	tokens := wantKinds(t, "  // x := 1 + 2 (not code)", []TokenKind{COMMENT})
	if tokens[0].Text != "// x := 1 + 2 (not code)" {
		t.Errorf("comment text = %q", tokens[0].Text)
	}
	if tokens[0].Offset != 2 {
		t.Errorf("comment offset = %d; want 2", tokens[0].Offset)
	}
	// Even a comment marker after an expression swallows the remainder.
	wantKinds(t, "1 + 2 // trailing", []TokenKind{HEXNUM, OPERATOR, HEXNUM, COMMENT})
}

func TestTokenizeLoneColonIsUnknown(t *testing.T) {
	tokens := wantKinds(t, "a : b", []TokenKind{IDENT, UNKNOWN, IDENT})
	if tokens[1].Text != ":" {
		t.Errorf("unknown token text = %q; want :", tokens[1].Text)
	}
}

func TestTokenizeIdentifierGreedy(t *testing.T) {
	tokens := wantKinds(t, "_vAR9x", []TokenKind{IDENT})
	if tokens[0].Text != "_vAR9x" {
		t.Errorf("identifier = %q; want whole run", tokens[0].Text)
	}
}

func TestTokenizeHexStopsOutsideFamily(t *testing.T) {
	// 'g' is not a hex continuation, so a fresh identifier token starts.
	wantKinds(t, "12g", []TokenKind{HEXNUM, IDENT})
	// Uppercase letters never continue a literal either.
	wantKinds(t, "1A", []TokenKind{HEXNUM, UNKNOWN})
}

func TestTokenizeUppercaseStartIsUnknown(t *testing.T) {
	wantKinds(t, "Abc", []TokenKind{UNKNOWN, IDENT})
}

func TestTokenizeAlwaysMakesProgress(t *testing.T) {
	tokens := wantKinds(t, "#?!", []TokenKind{UNKNOWN, UNKNOWN, UNKNOWN})
	for i, tok := range tokens {
		if len(tok.Text) != 1 || tok.Offset != i {
			t.Errorf("unknown token %d = %+v; want one byte at %d", i, tok, i)
		}
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	if got := Tokenize(" \t\r\n "); got != nil {
		t.Errorf("Tokenize(whitespace) = %v; want no tokens", got)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	src := "_a := (1f + b) * 0 // tail"
	if !reflect.DeepEqual(Tokenize(src), Tokenize(src)) {
		t.Error("same input produced different token sequences")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abc", true},
		{"_abc", true},
		{"a1B_c", true},
		{"_", true},
		{"Abc", false},
		{"1abc", false},
		{"", false},
		{"a-b", false},
	}
	for _, tc := range tests {
		if got := IsValidIdentifier(tc.input); got != tc.want {
			t.Errorf("IsValidIdentifier(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsValidHexLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"1a5", true},
		{"0ff", true},
		{"9", true},
		{"a5", false},
		{"1A", false},
		{"0x1f", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValidHexLiteral(tc.input); got != tc.want {
			t.Errorf("IsValidHexLiteral(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}
