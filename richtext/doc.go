// Package richtext decodes rich-text configuration values.
//
// A rich-text value may be written in any of three shapes, and all of them
// decode to a *styled.Text:
//
//	"title": "<gold>Welcome!"                       markup string
//	"lines": ["<gold>Welcome!", "<gray>Enjoy."]      one markup line per element
//	"title": {"text": "Welcome!", "color": "gold"}  legacy component tree
//	"title": null                                   absent (nil)
//
// The empty string decodes to [styled.Empty], which is distinct from the
// absent value. Array lines are joined with [Separator] so each line starts
// with a clean style. Any other value (booleans, numbers) is a
// [DecodeError] of kind [KindUnexpectedShape].
//
// # Integration
//
// Use [Field] as a struct field type with encoding/json, json v2 or
// yaml.v3. With json v2, [Decoder.Unmarshalers] lets plain *styled.Text
// fields decode the same way. For token-level control, call
// [Decoder.Decode] with a jsontext.Decoder; it consumes exactly one value.
//
// Decoding is one-way. Every encoding entry point fails with
// [ErrUnsupportedOperation].
package richtext
