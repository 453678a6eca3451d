package markup

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenText          // literal text, escapes resolved
	TokenOpen          // <name:arg:arg>
	TokenClose         // </name>
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenText:
		return "TEXT"
	case TokenOpen:
		return "OPEN"
	case TokenClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Position represents a source location.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexer token.
type Token struct {
	Type    TokenType
	Value   string   // text for TokenText, lower-cased tag name otherwise
	Args    []string // tag arguments, quotes removed
	Negated bool     // <!name>
	Raw     string   // source text of the token
	Pos     Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenText:
		return fmt.Sprintf("TEXT(%q)", t.Value)
	case TokenOpen, TokenClose:
		return fmt.Sprintf("%s(%s)", t.Type, t.Raw)
	default:
		return t.Type.String()
	}
}

// Lexer splits markup into text and tag tokens.
//
// Anything between '<' and '>' that does not form a well-shaped tag is
// literal text. Inside text, "\<" and "\\" escape; inside quoted tag
// arguments, "\'", "\"" and "\\" escape.
type Lexer struct {
	input string
	pos   int // Current position in input
	line  int // Current line number (1-based)
	col   int // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Tokenize returns all tokens from the input, ending with TokenEOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// nextToken returns the next token.
func (l *Lexer) nextToken() Token {
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.currentPos()}
	}
	if l.peek() == '<' {
		if tok, ok := l.scanTag(); ok {
			return tok
		}
	}
	return l.scanText()
}

// scanText scans literal text up to the next tag that parses.
func (l *Lexer) scanText() Token {
	startPos := l.currentPos()
	start := l.pos

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.peek()

		if ch == '\\' && l.pos+1 < len(l.input) {
			next := l.input[l.pos+1]
			if next == '<' || next == '\\' {
				l.advance()
				l.advance()
				sb.WriteByte(next)
				continue
			}
		}

		if ch == '<' && l.pos > start {
			// Stop only if a real tag starts here.
			if _, ok := l.lookaheadTag(); ok {
				break
			}
		}

		sb.WriteByte(ch)
		l.advance()
	}

	return Token{Type: TokenText, Value: sb.String(), Raw: l.input[start:l.pos], Pos: startPos}
}

// lookaheadTag reports whether a tag starts at the current position
// without consuming it.
func (l *Lexer) lookaheadTag() (Token, bool) {
	saved := *l
	tok, ok := l.scanTag()
	*l = saved
	return tok, ok
}

// scanTag scans "<...>" at the current position. On failure the lexer
// position is left unchanged.
func (l *Lexer) scanTag() (Token, bool) {
	saved := *l
	startPos := l.currentPos()
	start := l.pos
	l.advance() // consume <

	typ := TokenOpen
	if l.peek() == '/' {
		typ = TokenClose
		l.advance()
	}
	negated := false
	if typ == TokenOpen && l.peek() == '!' {
		negated = true
		l.advance()
	}

	nameStart := l.pos
	for l.pos < len(l.input) && isNameChar(l.peek()) {
		l.advance()
	}
	name := l.input[nameStart:l.pos]
	if name == "" {
		*l = saved
		return Token{}, false
	}

	var args []string
	for l.pos < len(l.input) && l.peek() == ':' {
		l.advance()
		arg, ok := l.scanArg()
		if !ok {
			*l = saved
			return Token{}, false
		}
		args = append(args, arg)
	}

	if l.peek() == '/' {
		// self-closing form <name/>
		l.advance()
	}
	if l.peek() != '>' {
		*l = saved
		return Token{}, false
	}
	l.advance()

	return Token{
		Type:    typ,
		Value:   strings.ToLower(name),
		Args:    args,
		Negated: negated,
		Raw:     l.input[start:l.pos],
		Pos:     startPos,
	}, true
}

// scanArg scans one tag argument, quoted or bare.
func (l *Lexer) scanArg() (string, bool) {
	if q := l.peek(); q == '\'' || q == '"' {
		l.advance()
		var sb strings.Builder
		for l.pos < len(l.input) {
			ch := l.peek()
			if ch == '\\' && l.pos+1 < len(l.input) {
				next := l.input[l.pos+1]
				if next == q || next == '\\' {
					l.advance()
					l.advance()
					sb.WriteByte(next)
					continue
				}
			}
			if ch == q {
				l.advance()
				return sb.String(), true
			}
			sb.WriteByte(ch)
			l.advance()
		}
		return "", false // unterminated quote
	}

	start := l.pos
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == ':' || ch == '>' || ch == '<' {
			break
		}
		if ch == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '>' {
			break
		}
		l.advance()
	}
	return l.input[start:l.pos], true
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func isNameChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-' || ch == '#' || ch == '.'
}
