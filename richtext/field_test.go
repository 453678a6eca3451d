package richtext

import (
	stdjson "encoding/json"
	"errors"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/richtext/styled"
)

type motd struct {
	Title   Field `json:"title" yaml:"title"`
	Lines   Field `json:"lines" yaml:"lines"`
	Legacy  Field `json:"legacy" yaml:"legacy"`
	Empty   Field `json:"empty" yaml:"empty"`
	None    Field `json:"none" yaml:"none"`
	Missing Field `json:"missing" yaml:"missing"`
}

const motdJSON = `{
	"title": "<red>Hi",
	"lines": ["<gold>one", "two"],
	"legacy": {"text": "x", "bold": true},
	"empty": "",
	"none": null
}`

func checkMOTD(t *testing.T, m motd) {
	t.Helper()

	red := styled.Style{}.WithColor(styled.Red)
	assert.True(t, m.Title.Text().Equal(styled.New("Hi", red)), "title: %s", m.Title)

	assert.Equal(t, "one\ntwo", m.Lines.Text().PlainText())

	require.False(t, m.Legacy.IsAbsent())
	assert.Equal(t, "x", m.Legacy.Text().PlainText())
	assert.Equal(t, styled.StateTrue, m.Legacy.Text().Style().Decoration(styled.Bold))

	assert.False(t, m.Empty.IsAbsent())
	assert.True(t, m.Empty.Text().IsEmpty())

	assert.True(t, m.None.IsAbsent())
	assert.True(t, m.Missing.IsAbsent())
}

// ============================================================
// JSON
// ============================================================

func TestField_EncodingJSON(t *testing.T) {
	var m motd
	require.NoError(t, stdjson.Unmarshal([]byte(motdJSON), &m))
	checkMOTD(t, m)
}

func TestField_JSONv2(t *testing.T) {
	var m motd
	require.NoError(t, json.Unmarshal([]byte(motdJSON), &m))
	checkMOTD(t, m)
}

func TestField_JSONErrors(t *testing.T) {
	var m motd
	err := stdjson.Unmarshal([]byte(`{"title": true}`), &m)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %v", err)
	assert.Equal(t, KindUnexpectedShape, decodeErr.Kind)

	err = json.Unmarshal([]byte(`{"lines": ["a", 2]}`), &m)
	require.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %v", err)
	assert.Equal(t, KindNonStringElement, decodeErr.Kind)
}

func TestField_MarshalUnsupported(t *testing.T) {
	m := motd{Title: FieldOf(styled.Plain("x"))}

	_, err := stdjson.Marshal(m)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = yaml.Marshal(m)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestField_OrDefault(t *testing.T) {
	def := styled.Plain("default")

	assert.Same(t, def, Field{}.OrDefault(def))

	set := FieldOf(styled.Empty())
	assert.True(t, set.OrDefault(def).IsEmpty())
	assert.Equal(t, "<absent>", Field{}.String())
}

// ============================================================
// YAML
// ============================================================

const motdYAML = `
title: "<red>Hi"
lines:
  - "<gold>one"
  - two
legacy:
  text: x
  bold: true
empty: ""
none: ~
`

func TestField_YAML(t *testing.T) {
	var m motd
	require.NoError(t, yaml.Unmarshal([]byte(motdYAML), &m))
	checkMOTD(t, m)
}

func TestField_YAMLAlias(t *testing.T) {
	var m motd
	src := "title: &t \"<red>Hi\"\nlines: *t\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &m))

	assert.Equal(t, "Hi", m.Title.Text().PlainText())
	assert.Equal(t, "Hi", m.Lines.Text().PlainText())
}

func TestField_YAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
		path string
	}{
		{"number", "title: 42\n", KindUnexpectedShape, "1:8"},
		{"boolean", "title: true\n", KindUnexpectedShape, "1:8"},
		{"non-string line", "lines:\n  - a\n  - 3\n", KindNonStringElement, "3:5"},
		{"nested sequence", "lines:\n  - a\n  - [b]\n", KindNonStringElement, "3:5"},
		{"bad markup", "title: \"<color:nope>x\"\n", KindMarkupSyntax, "1:8"},
		{"bad legacy", "legacy:\n  color: red\n", KindLegacyFormat, "2:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m motd
			err := yaml.Unmarshal([]byte(tt.src), &m)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %v", err)
			assert.Equal(t, tt.kind, decodeErr.Kind)
			assert.Equal(t, tt.path, decodeErr.Path)
		})
	}
}

func TestDecodeYAML_Document(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- \"<bold>a\"\n- b\n"), &doc))

	got, err := NewDecoder().DecodeYAML(&doc)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got.PlainText())

	var empty yaml.Node
	got, err = NewDecoder().DecodeYAML(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)
}
