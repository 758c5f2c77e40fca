package hexcalc

import "strings"

// / Structural check of a token sequence against the expression grammar.
// / Never evaluates and never touches a variable table. A single pass
// / tracking whether an operand is expected next and the parenthesis depth.
func ValidateExpression(tokens []Token) *EvalError {
	if len(tokens) == 0 {
		return syntaxErrorf("expression incomplete")
	}
	expectingOperand := true
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case UNKNOWN:
			return syntaxErrorf("unrecognized character %q", tok.Text)
		case COMMENT:
			// Comments may only terminate a full statement, never appear
			// mid-expression.
			return syntaxErrorf("comment not allowed inside expression")
		}
		if expectingOperand {
			switch tok.Kind {
			case HEXNUM:
				// Re-validate what the greedy scan could not rule out.
				if !IsValidHexLiteral(tok.Text) {
					return syntaxErrorf("invalid number literal %q", tok.Text)
				}
				expectingOperand = false
			case IDENT:
				if IsUpperASCII(tok.Text[0]) {
					return syntaxErrorf("identifier %q must not start with an uppercase letter", tok.Text)
				}
				expectingOperand = false
			case LPAREN:
				depth++
			default:
				return syntaxErrorf("unexpected %s %q", TokenName(tok.Kind), tok.Text)
			}
		} else {
			switch tok.Kind {
			case OPERATOR:
				expectingOperand = true
			case RPAREN:
				if depth == 0 {
					return syntaxErrorf("missing opening parenthesis")
				}
				depth--
			default:
				return syntaxErrorf("unexpected %s %q", TokenName(tok.Kind), tok.Text)
			}
		}
	}
	if depth != 0 {
		return syntaxErrorf("missing closing parenthesis")
	}
	if expectingOperand {
		return syntaxErrorf("expression incomplete")
	}
	return nil
}

// / Lightweight statement-level check: classifies the statement the same way
// / ProcessStatement does, but only confirms structure. Used where no
// / evaluation is wanted (dry runs, the validate endpoint, re-checking
// / accepted statements).
func ValidateStatement(text string) *EvalError {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimSuffix(trimmed, ";")
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return nil
	}
	if idx := strings.Index(trimmed, ":="); idx >= 0 {
		lhs := strings.TrimSpace(trimmed[:idx])
		if err := validateAssignTarget(lhs); err != nil {
			return err
		}
		return ValidateExpression(Tokenize(trimmed[idx+2:]))
	}
	tokens := Tokenize(trimmed)
	if len(tokens) == 1 {
		if err, handled := validateSingleToken(tokens[0]); handled {
			return err
		}
	}
	return ValidateExpression(tokens)
}

func validateAssignTarget(lhs string) *EvalError {
	if len(lhs) > 0 && IsUpperASCII(lhs[0]) {
		return syntaxErrorf("left side of assignment must not start with an uppercase letter")
	}
	if !IsValidIdentifier(lhs) {
		return syntaxErrorf("left side of assignment must be identifier")
	}
	return nil
}

// / The single-token shortcut: a standalone number or identifier is checked
// / against the literal/identifier rules alone. Other kinds fall through to
// / the full expression walk. Returns handled=false for the fall-through.
func validateSingleToken(tok Token) (*EvalError, bool) {
	switch tok.Kind {
	case HEXNUM:
		if !IsValidHexLiteral(tok.Text) {
			return syntaxErrorf("invalid number literal %q", tok.Text), true
		}
		return nil, true
	case IDENT:
		if IsUpperASCII(tok.Text[0]) {
			return syntaxErrorf("identifier %q must not start with an uppercase letter", tok.Text), true
		}
		return nil, true
	}
	return nil, false
}
