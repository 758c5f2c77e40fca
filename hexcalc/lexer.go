package hexcalc

// TokenKind 是一个枚举，表示 lexer 可以识别的不同类型的 tokens。
type TokenKind uint8

// 定义 TokenKind 枚举值。
const (
	IDENT TokenKind = iota
	HEXNUM
	OPERATOR
	ASSIGN
	LPAREN
	RPAREN
	COMMENT
	UNKNOWN
)

// / A classified, positioned lexical unit. Text is the exact substring
// / matched; Offset is the 0-based byte index into the statement text.
type Token struct {
	Kind   TokenKind `json:"kind"`
	Text   string    `json:"text"`
	Offset int       `json:"offset"`
}

// Lexer 结构体包含 lexer 的状态。
type Lexer struct {
	input_ string
	ofs_   int
}

func NewLexer(input string) *Lexer {
	ret := Lexer{}
	ret.input_ = input
	return &ret
}

// / Skip past whitespace (space, tab, CR, LF).
func (this *Lexer) EatWhitespace() {
	for this.ofs_ < len(this.input_) {
		switch this.input_[this.ofs_] {
		case ' ', '\t', '\r', '\n':
			this.ofs_++
		default:
			return
		}
	}
}

// / Read the next Token. Returns false once the input is exhausted.
// / The scan is total: any byte that opens no recognized token family
// / becomes a one-byte UNKNOWN token, so the caller always makes progress.
func (this *Lexer) ReadToken(tok *Token) bool {
	this.EatWhitespace()
	if this.ofs_ >= len(this.input_) {
		return false
	}
	start := this.ofs_
	c := this.input_[start]
	switch {
	case c == '/' && start+1 < len(this.input_) && this.input_[start+1] == '/':
		// A comment consumes everything to the end of the statement text.
		this.ofs_ = len(this.input_)
		*tok = Token{Kind: COMMENT, Text: this.input_[start:], Offset: start}
	case c == ':':
		if start+1 < len(this.input_) && this.input_[start+1] == '=' {
			this.ofs_ = start + 2
			*tok = Token{Kind: ASSIGN, Text: ":=", Offset: start}
		} else {
			this.ofs_ = start + 1
			*tok = Token{Kind: UNKNOWN, Text: ":", Offset: start}
		}
	case c == '(':
		this.ofs_ = start + 1
		*tok = Token{Kind: LPAREN, Text: "(", Offset: start}
	case c == ')':
		this.ofs_ = start + 1
		*tok = Token{Kind: RPAREN, Text: ")", Offset: start}
	case c == '+' || c == '-' || c == '*' || c == '/':
		this.ofs_ = start + 1
		*tok = Token{Kind: OPERATOR, Text: this.input_[start : start+1], Offset: start}
	case c == '_' || IsLowerASCII(c):
		p := start + 1
		for p < len(this.input_) && isIdentContinue(this.input_[p]) {
			p++
		}
		this.ofs_ = p
		*tok = Token{Kind: IDENT, Text: this.input_[start:p], Offset: start}
	case isDigit(c):
		// Greedy over the hex family. The scan entry condition already
		// forces a leading digit; the consumers re-check the full literal
		// pattern (see IsValidHexLiteral).
		p := start + 1
		for p < len(this.input_) && isHexContinue(this.input_[p]) {
			p++
		}
		this.ofs_ = p
		*tok = Token{Kind: HEXNUM, Text: this.input_[start:p], Offset: start}
	default:
		this.ofs_ = start + 1
		*tok = Token{Kind: UNKNOWN, Text: this.input_[start : start+1], Offset: start}
	}
	return true
}

// / Tokenize one statement's raw text. Pure function of its input: the same
// / text always yields the same token sequence, and scanning never fails.
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token
	var tok Token
	for lexer.ReadToken(&tok) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// / Return a human-readable form of a token kind, used in error messages.
func TokenName(kind TokenKind) string {
	switch kind {
	case IDENT:
		return "identifier"
	case HEXNUM:
		return "number"
	case OPERATOR:
		return "operator"
	case ASSIGN:
		return "':='"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case COMMENT:
		return "comment"
	case UNKNOWN:
		return "unrecognized character"
	}
	return "" // not reached
}

func IsLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func IsUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentContinue(c byte) bool {
	return c == '_' || isDigit(c) || IsLowerASCII(c) || IsUpperASCII(c)
}

func isHexContinue(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f')
}

// / Whole-string identifier rule: leading '_' or lowercase letter, then any
// / mix of ASCII letters, digits and '_'.
func IsValidIdentifier(name string) bool {
	if len(name) == 0 {
		return false
	}
	if name[0] != '_' && !IsLowerASCII(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentContinue(name[i]) {
			return false
		}
	}
	return true
}

// / Whole-string literal rule: one leading digit 0-9, then zero or more of
// / 0-9/a-f. Uppercase hex digits and 0x prefixes are not part of the
// / language.
func IsValidHexLiteral(text string) bool {
	if len(text) == 0 || !isDigit(text[0]) {
		return false
	}
	for i := 1; i < len(text); i++ {
		if !isHexContinue(text[i]) {
			return false
		}
	}
	return true
}
