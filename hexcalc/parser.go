package hexcalc

import (
	"fmt"
	"strconv"
)

// ErrorKind 区分两类求值错误。 The tag is load-bearing: a syntax error
// rejects the statement, a semantic error accepts it with a warning and
// suppresses any assignment.
type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	SemanticError
)

// / The one error type the evaluator reports. Ident carries the variable
// / name for undefined-variable errors so callers can aggregate them.
type EvalError struct {
	Kind  ErrorKind
	Msg   string
	Ident string
}

func (this *EvalError) Error() string {
	return this.Msg
}

func syntaxErrorf(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: SyntaxError, Msg: fmt.Sprintf(format, args...)}
}

func semanticErrorf(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: SemanticError, Msg: fmt.Sprintf(format, args...)}
}

// / Recursive-descent evaluator over one token sequence.
// / Grammar, precedence low to high:
// /   Expr   := AddSub
// /   AddSub := MulDiv (("+"|"-") MulDiv)*
// /   MulDiv := Factor (("*"|"/") Factor)*
// /   Factor := HEXNUM | IDENT | "(" AddSub ")"
type Parser struct {
	tokens_ []Token
	pos_    int
	env_    Env
}

func NewParser(tokens []Token, env Env) *Parser {
	ret := Parser{}
	ret.tokens_ = tokens
	ret.env_ = env
	return &ret
}

// / Evaluate tokens against env. Returns the value or an *EvalError tagged
// / Syntax or Semantic. Operands are evaluated left to right, so the first
// / semantic failure encountered in evaluation order is the one reported.
func EvaluateExpression(tokens []Token, env Env) (int64, *EvalError) {
	parser := NewParser(tokens, env)
	if len(tokens) == 0 {
		return 0, syntaxErrorf("expression incomplete")
	}
	value, err := parser.parseAddSub()
	if err != nil {
		return 0, err
	}
	if !parser.atEnd() {
		tok := parser.peek()
		return 0, syntaxErrorf("unexpected %s %q after expression", TokenName(tok.Kind), tok.Text)
	}
	return value, nil
}

func (this *Parser) atEnd() bool {
	return this.pos_ >= len(this.tokens_)
}

func (this *Parser) peek() Token {
	return this.tokens_[this.pos_]
}

func (this *Parser) parseAddSub() (int64, *EvalError) {
	left, err := this.parseMulDiv()
	if err != nil {
		return 0, err
	}
	for !this.atEnd() {
		tok := this.peek()
		if tok.Kind != OPERATOR || (tok.Text != "+" && tok.Text != "-") {
			break
		}
		this.pos_++
		right, err := this.parseMulDiv()
		if err != nil {
			return 0, err
		}
		if tok.Text == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (this *Parser) parseMulDiv() (int64, *EvalError) {
	left, err := this.parseFactor()
	if err != nil {
		return 0, err
	}
	for !this.atEnd() {
		tok := this.peek()
		if tok.Kind != OPERATOR || (tok.Text != "*" && tok.Text != "/") {
			break
		}
		this.pos_++
		right, err := this.parseFactor()
		if err != nil {
			return 0, err
		}
		if tok.Text == "*" {
			left *= right
		} else {
			if right == 0 {
				return 0, semanticErrorf("division by zero")
			}
			left = floorDiv(left, right)
		}
	}
	return left, nil
}

func (this *Parser) parseFactor() (int64, *EvalError) {
	if this.atEnd() {
		return 0, syntaxErrorf("expression incomplete")
	}
	tok := this.peek()
	this.pos_++
	switch tok.Kind {
	case HEXNUM:
		if !IsValidHexLiteral(tok.Text) {
			return 0, syntaxErrorf("invalid number literal %q", tok.Text)
		}
		value, err := strconv.ParseInt(tok.Text, 16, 64)
		if err != nil {
			return 0, syntaxErrorf("invalid number literal %q", tok.Text)
		}
		return value, nil
	case IDENT:
		if IsUpperASCII(tok.Text[0]) {
			return 0, syntaxErrorf("identifier %q must not start with an uppercase letter", tok.Text)
		}
		value, ok := this.env_.LookupVariable(tok.Text)
		if !ok {
			err := semanticErrorf("undefined variable %q", tok.Text)
			err.Ident = tok.Text
			return 0, err
		}
		return value, nil
	case LPAREN:
		value, err := this.parseAddSub()
		if err != nil {
			return 0, err
		}
		if this.atEnd() || this.peek().Kind != RPAREN {
			return 0, syntaxErrorf("missing closing parenthesis")
		}
		this.pos_++
		return value, nil
	default:
		return 0, syntaxErrorf("unexpected %s %q", TokenName(tok.Kind), tok.Text)
	}
}

// / Integer division truncating toward negative infinity, for both signs of
// / both operands. The divisor has been checked against zero already.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
