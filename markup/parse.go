package markup

import (
	"fmt"
	"strings"

	"github.com/Neumenon/richtext/styled"
)

// SyntaxError represents a markup error with location.
type SyntaxError struct {
	Message string
	Pos     Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Parser converts markup into styled text. A Parser is immutable and safe
// for concurrent use.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects unknown tags, unmatched closing tags and tags left
// open at the end of input. Without it unknown tags stay literal text,
// stray closing tags are ignored and open tags close at the end.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses markup with the default, lenient parser.
func Parse(text string) (*styled.Text, error) {
	return defaultParser.Parse(text)
}

// Strict reports whether the parser runs in strict mode.
func (p *Parser) Strict() bool {
	return p.strict
}

// Parse parses markup into a tree. The tree is not compacted: every tag
// becomes one node so callers can inspect the structure as written.
func (p *Parser) Parse(text string) (*styled.Text, error) {
	st := &parseState{
		parser: p,
		stack:  []*frame{{}},
	}
	for _, tok := range NewLexer(text).Tokenize() {
		if err := st.apply(tok); err != nil {
			return nil, err
		}
	}
	return st.root(), nil
}

// ============================================================
// Parse state
// ============================================================

// frame is an open tag whose children are still being collected.
type frame struct {
	key      string // canonical tag key used to match closing tags
	style    styled.Style
	children []*styled.Text
	pos      Position
	raw      string
}

type parseState struct {
	parser *Parser
	stack  []*frame // stack[0] is the root
}

func (st *parseState) top() *frame {
	return st.stack[len(st.stack)-1]
}

func (st *parseState) appendChild(t *styled.Text) {
	f := st.top()
	f.children = append(f.children, t)
}

// pop closes the innermost frame and attaches it to its parent.
func (st *parseState) pop() {
	f := st.top()
	st.stack = st.stack[:len(st.stack)-1]
	st.appendChild(styled.New("", f.style, f.children...))
}

func (st *parseState) apply(tok Token) error {
	switch tok.Type {
	case TokenText:
		if tok.Value != "" {
			st.appendChild(styled.Plain(tok.Value))
		}
		return nil

	case TokenOpen:
		return st.open(tok)

	case TokenClose:
		return st.close(tok)

	case TokenEOF:
		if len(st.stack) > 1 && st.parser.strict {
			f := st.top()
			return &SyntaxError{Message: fmt.Sprintf("unclosed tag %s", f.raw), Pos: f.pos}
		}
		for len(st.stack) > 1 {
			st.pop()
		}
		return nil

	default:
		return &SyntaxError{Message: fmt.Sprintf("unexpected token %s", tok.Type), Pos: tok.Pos}
	}
}

func (st *parseState) open(tok Token) error {
	tag, err := st.resolve(tok)
	if err != nil {
		return err
	}

	switch tag.kind {
	case tagStyle:
		st.stack = append(st.stack, &frame{key: tag.key, style: tag.style, pos: tok.Pos, raw: tok.Raw})
	case tagNewline:
		st.appendChild(styled.Plain("\n"))
	case tagReset:
		for len(st.stack) > 1 {
			st.pop()
		}
	default:
		if st.parser.strict {
			return &SyntaxError{Message: fmt.Sprintf("unknown tag %s", tok.Raw), Pos: tok.Pos}
		}
		st.appendChild(styled.Plain(tok.Raw))
	}
	return nil
}

func (st *parseState) close(tok Token) error {
	key, known := closingKey(tok.Value)
	if !known {
		if st.parser.strict {
			return &SyntaxError{Message: fmt.Sprintf("unknown tag %s", tok.Raw), Pos: tok.Pos}
		}
		st.appendChild(styled.Plain(tok.Raw))
		return nil
	}
	if key == "" {
		return nil
	}

	for i := len(st.stack) - 1; i > 0; i-- {
		if st.stack[i].key != key {
			continue
		}
		if st.parser.strict && i != len(st.stack)-1 {
			inner := st.top()
			return &SyntaxError{Message: fmt.Sprintf("%s closes %s before inner %s", tok.Raw, st.stack[i].raw, inner.raw), Pos: tok.Pos}
		}
		for len(st.stack) > i {
			st.pop()
		}
		return nil
	}

	if st.parser.strict {
		return &SyntaxError{Message: fmt.Sprintf("unmatched closing tag %s", tok.Raw), Pos: tok.Pos}
	}
	return nil
}

func (st *parseState) root() *styled.Text {
	return styled.Join(st.stack[0].children...)
}

// resolve maps a tag token onto what it does. Hover text is parsed
// recursively with the same parser.
func (st *parseState) resolve(tok Token) (resolvedTag, error) {
	tag, err := resolveTag(tok.Value, tok.Args, tok.Negated, st.parser)
	if err != nil {
		return resolvedTag{}, &SyntaxError{Message: fmt.Sprintf("%s: %v", tok.Raw, err), Pos: tok.Pos}
	}
	return tag, nil
}

// joinArgs rejoins arguments that were split on ':' (URLs, font keys).
func joinArgs(args []string) string {
	return strings.Join(args, ":")
}
