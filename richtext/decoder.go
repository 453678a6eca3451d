package richtext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.uber.org/zap"

	"github.com/Neumenon/richtext/legacy"
	"github.com/Neumenon/richtext/markup"
	"github.com/Neumenon/richtext/styled"
)

// Separator is placed between the lines of an array value: a line break
// followed by a style reset, so no line inherits the styles left open by
// the one before it.
const Separator = "<newline><reset>"

// MarkupParser turns markup text into styled text.
type MarkupParser interface {
	Parse(text string) (*styled.Text, error)
}

// LegacyDecoder turns a legacy JSON component into styled text.
type LegacyDecoder interface {
	Decode(json string) (*styled.Text, error)
}

// Decoder decodes rich-text values by their JSON shape. A Decoder is
// immutable and safe for concurrent use; the jsontext.Decoder passed to
// it is not.
type Decoder struct {
	markup MarkupParser
	legacy LegacyDecoder
	logger *zap.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMarkupParser replaces the markup parser.
func WithMarkupParser(p MarkupParser) Option {
	return func(d *Decoder) {
		d.markup = p
	}
}

// WithLegacyDecoder replaces the legacy component decoder.
func WithLegacyDecoder(l LegacyDecoder) Option {
	return func(d *Decoder) {
		d.legacy = l
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// NewDecoder creates a decoder using the lenient markup parser and the
// default legacy decoder unless options say otherwise.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.markup == nil {
		d.markup = markup.NewParser()
	}
	if d.legacy == nil {
		d.legacy = legacy.NewDecoder()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes the next value with the default decoder.
func Decode(dec *jsontext.Decoder) (*styled.Text, error) {
	return defaultDecoder.Decode(dec)
}

// Unmarshal decodes a complete JSON document with the default decoder.
func Unmarshal(data []byte) (*styled.Text, error) {
	return defaultDecoder.Unmarshal(data)
}

// ============================================================
// Decoding
// ============================================================

// Decode reads exactly one value from dec and returns its styled text.
//
// A nil text with a nil error is the absent value (JSON null). On success
// dec is positioned just after the value. A boolean or number is consumed
// before the error is returned, so the caller may skip it and continue
// with the next sibling.
func (d *Decoder) Decode(dec *jsontext.Decoder) (*styled.Text, error) {
	kind := dec.PeekKind()

	switch ShapeOf(kind) {
	case ShapeString:
		return d.decodeString(dec)

	case ShapeArray:
		return d.decodeArray(dec)

	case ShapeObject:
		return d.decodeObject(dec)

	case ShapeNull:
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		d.logger.Debug("decoded absent rich text", zap.String("path", pointer(dec)))
		return nil, nil

	default:
		return nil, d.unexpected(dec, kind)
	}
}

func (d *Decoder) decodeString(dec *jsontext.Decoder) (*styled.Text, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	text := tok.String()
	path := pointer(dec)

	if text == "" {
		d.logger.Debug("decoded empty rich text", zap.String("path", path))
		return styled.Empty(), nil
	}
	return d.parseMarkup(text, path, ShapeString)
}

func (d *Decoder) decodeArray(dec *jsontext.Decoder) (*styled.Text, error) {
	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}
	path := pointer(dec)

	var buf strings.Builder
	lines := 0
	for {
		kind := dec.PeekKind()
		if kind == ']' {
			break
		}
		if kind != '"' {
			return nil, d.nonString(dec, kind)
		}

		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		buf.WriteString(tok.String())
		lines++
		if dec.PeekKind() != ']' {
			buf.WriteString(Separator)
		}
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	d.logger.Debug("joined rich text lines", zap.String("path", path), zap.Int("lines", lines))
	return d.parseMarkup(buf.String(), path, ShapeArray)
}

func (d *Decoder) decodeObject(dec *jsontext.Decoder) (*styled.Text, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return nil, err
	}
	// raw is only valid until the next read
	source := string(raw)
	path := pointer(dec)

	text, err := d.legacy.Decode(source)
	if err != nil {
		d.logger.Debug("legacy rich text rejected", zap.String("path", path), zap.Error(err))
		return nil, &DecodeError{Kind: KindLegacyFormat, Path: path, Shape: ShapeObject, Err: err}
	}
	d.logger.Debug("decoded legacy rich text", zap.String("path", path), zap.Int("len", len(source)))
	return text, nil
}

func (d *Decoder) parseMarkup(text, path string, shape Shape) (*styled.Text, error) {
	parsed, err := d.markup.Parse(text)
	if err != nil {
		d.logger.Debug("markup rejected", zap.String("path", path), zap.Error(err))
		return nil, &DecodeError{Kind: KindMarkupSyntax, Path: path, Shape: shape, Err: err}
	}
	d.logger.Debug("decoded markup", zap.String("path", path), zap.Stringer("shape", shape), zap.Int("len", len(text)))
	return parsed.Compact(), nil
}

// unexpected builds the error for a value of an unsupported shape. Scalars
// are consumed so the cursor lands after them; delimiters and read errors
// leave the stream as it is.
func (d *Decoder) unexpected(dec *jsontext.Decoder, kind jsontext.Kind) error {
	switch kind {
	case 't', 'f', '0':
		if err := dec.SkipValue(); err != nil {
			return err
		}
	case 0:
		// Surface the underlying syntax or read error.
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
	}
	err := &DecodeError{Kind: KindUnexpectedShape, Path: pointer(dec), Shape: ShapeOther, Found: kindName(kind)}
	d.logger.Debug("unexpected rich text shape", zap.String("path", err.Path), zap.String("found", err.Found))
	return err
}

func (d *Decoder) nonString(dec *jsontext.Decoder, kind jsontext.Kind) error {
	if kind == 0 {
		_, err := dec.ReadToken()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	if err := dec.SkipValue(); err != nil {
		return err
	}
	err := &DecodeError{Kind: KindNonStringElement, Path: pointer(dec), Shape: ShapeOf(kind), Found: kindName(kind)}
	d.logger.Debug("non-string rich text line", zap.String("path", err.Path), zap.String("found", err.Found))
	return err
}

// Unmarshal decodes data, which must hold exactly one JSON value.
func (d *Decoder) Unmarshal(data []byte) (*styled.Text, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	text, err := d.Decode(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("richtext: unexpected data after value at offset %d", dec.InputOffset())
		}
		return nil, err
	}
	return text, nil
}

// Unmarshalers returns json v2 unmarshalers that decode every *styled.Text
// destination through d.
func (d *Decoder) Unmarshalers() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, dst **styled.Text) error {
		text, err := d.Decode(dec)
		if err != nil {
			return err
		}
		*dst = text
		return nil
	})
}

// ============================================================
// Encoding
// ============================================================

// Encode always fails: rich text is decode-only.
func (d *Decoder) Encode(enc *jsontext.Encoder, t *styled.Text) error {
	return unsupported()
}

func pointer(dec *jsontext.Decoder) string {
	return string(dec.StackPointer())
}

func kindName(kind jsontext.Kind) string {
	switch kind {
	case 't', 'f':
		return "boolean"
	case '0':
		return "number"
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 'n':
		return "null"
	case ']':
		return "end of array"
	case '}':
		return "end of object"
	default:
		return "invalid token"
	}
}
