package hexcalc

import "strings"

// Status 表示一条语句的处理结果。
type Status uint8

const (
	Accepted Status = iota
	Rejected
)

func (s Status) String() string {
	if s == Rejected {
		return "rejected"
	}
	return "accepted"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// / Per-statement result. Message is set on every rejection and carries the
// / semantic warning on accepted statements that could not produce a value.
type Outcome struct {
	RawText string `json:"raw_text"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type stmtKind uint8

const (
	stmtEmpty stmtKind = iota
	stmtComment
	stmtAssign
	stmtExpr
	stmtSingle
)

// / A statement after the env-free half of processing: classified, tokenized
// / and structurally checked. Preparing is a pure function of the text, so
// / the driver may prepare statements concurrently; only commit touches the
// / variable table.
type preparedStatement struct {
	raw_    string
	kind_   stmtKind
	lhs_    string
	tokens_ []Token
	reject_ string
}

func prepareStatement(text string) *preparedStatement {
	ret := preparedStatement{}
	ret.raw_ = strings.TrimSpace(text)
	if ret.raw_ == "" {
		ret.kind_ = stmtEmpty
		return &ret
	}
	if strings.HasPrefix(ret.raw_, "//") {
		// Comments are always well-formed statements.
		ret.kind_ = stmtComment
		return &ret
	}
	if idx := strings.Index(ret.raw_, ":="); idx >= 0 {
		ret.kind_ = stmtAssign
		ret.lhs_ = strings.TrimSpace(ret.raw_[:idx])
		if err := validateAssignTarget(ret.lhs_); err != nil {
			ret.reject_ = err.Msg
			return &ret
		}
		ret.tokens_ = Tokenize(ret.raw_[idx+2:])
		if err := rejectForeignTokens(ret.tokens_); err != nil {
			ret.reject_ = err.Msg
			return &ret
		}
		if err := ValidateExpression(ret.tokens_); err != nil {
			ret.reject_ = err.Msg
		}
		return &ret
	}
	ret.tokens_ = Tokenize(ret.raw_)
	if len(ret.tokens_) == 0 {
		// Nothing but whitespace survived tokenization.
		ret.kind_ = stmtEmpty
		return &ret
	}
	if len(ret.tokens_) == 1 {
		if err, handled := validateSingleToken(ret.tokens_[0]); handled {
			ret.kind_ = stmtSingle
			if err != nil {
				ret.reject_ = err.Msg
			}
			return &ret
		}
	}
	ret.kind_ = stmtExpr
	if err := rejectForeignTokens(ret.tokens_); err != nil {
		ret.reject_ = err.Msg
		return &ret
	}
	if err := ValidateExpression(ret.tokens_); err != nil {
		ret.reject_ = err.Msg
	}
	return &ret
}

// / Unknown and comment tokens reject a statement outright wherever they
// / surface in an expression context.
func rejectForeignTokens(tokens []Token) *EvalError {
	for _, tok := range tokens {
		switch tok.Kind {
		case UNKNOWN:
			return syntaxErrorf("unrecognized character %q", tok.Text)
		case COMMENT:
			return syntaxErrorf("comment not allowed inside expression")
		}
	}
	return nil
}

// / Evaluate a prepared statement against env and produce its outcome.
// / Returns the semantic error, if any, so the driver can aggregate
// / undefined-variable names. Statements are committed strictly in source
// / order; this is the only place the variable table mutates.
func (this *preparedStatement) commit(env *BindingEnv) (Outcome, *EvalError) {
	if this.reject_ != "" {
		return Outcome{RawText: this.raw_, Status: Rejected, Message: this.reject_}, nil
	}
	switch this.kind_ {
	case stmtEmpty, stmtComment, stmtSingle:
		// The single-token shortcut deliberately skips the variable table:
		// a lone identifier is accepted on casing alone, matching the
		// multi-token path only structurally.
		return Outcome{RawText: this.raw_, Status: Accepted}, nil
	}
	value, err := EvaluateExpression(this.tokens_, env)
	if err != nil {
		if err.Kind == SyntaxError {
			// Structural checks in prepare make this unreachable in
			// practice; kept so the tag decides, not the phase.
			return Outcome{RawText: this.raw_, Status: Rejected, Message: err.Msg}, nil
		}
		// Semantic failure: the statement is well-formed, so it is accepted
		// with a warning, but any assignment does NOT take effect.
		return Outcome{RawText: this.raw_, Status: Accepted, Message: err.Msg}, err
	}
	if this.kind_ == stmtAssign {
		env.AddBinding(this.lhs_, value)
	}
	return Outcome{RawText: this.raw_, Status: Accepted}, nil
}

// / Process one statement against env, mutating env in place on a fully
// / successful assignment. Comment statements are accepted without further
// / analysis; assignment statements split on ":="; everything else is a bare
// / expression. On a semantic error the statement is Accepted with the
// / message as a warning and the variable table is left unchanged; accepted
// / does not imply the assignment took effect.
func ProcessStatement(text string, env *BindingEnv) Outcome {
	outcome, _ := prepareStatement(text).commit(env)
	return outcome
}
