package richtext

import (
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/richtext/styled"
)

// Field is a configuration field holding rich text. It decodes from JSON
// (encoding/json and json v2) and from YAML. The zero Field is absent.
//
//	type MOTD struct {
//		Title richtext.Field `json:"title"`
//		Lines richtext.Field `json:"lines"`
//	}
//
// Fields are decode-only: marshaling one fails with ErrUnsupportedOperation.
type Field struct {
	text *styled.Text
}

// FieldOf wraps a text; nil gives an absent field.
func FieldOf(t *styled.Text) Field {
	return Field{text: t}
}

// Text returns the decoded text, or nil when absent.
func (f Field) Text() *styled.Text {
	return f.text
}

// IsAbsent reports whether the field holds no value (missing or null).
func (f Field) IsAbsent() bool {
	return f.text == nil
}

// OrDefault returns the text, or def when the field is absent.
func (f Field) OrDefault(def *styled.Text) *styled.Text {
	if f.text == nil {
		return def
	}
	return f.text
}

// String returns the debug form of the text.
func (f Field) String() string {
	return f.text.String()
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	t, err := defaultDecoder.Unmarshal(data)
	if err != nil {
		return err
	}
	f.text = t
	return nil
}

// UnmarshalJSONFrom implements the json v2 UnmarshalerFrom interface.
func (f *Field) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	t, err := defaultDecoder.Decode(dec)
	if err != nil {
		return err
	}
	f.text = t
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	t, err := defaultDecoder.DecodeYAML(node)
	if err != nil {
		return err
	}
	f.text = t
	return nil
}

// MarshalJSON always fails: rich text is decode-only.
func (f Field) MarshalJSON() ([]byte, error) {
	return nil, unsupported()
}

// MarshalYAML always fails: rich text is decode-only.
func (f Field) MarshalYAML() (any, error) {
	return nil, unsupported()
}
