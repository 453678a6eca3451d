// Package stream reads a sequence of rich-text values.
//
// The input is any number of top-level JSON values separated by whitespace,
// typically one per line:
//
//	"<gold>Welcome"
//	["<gray>line one", "line two"]
//	{"text": "legacy", "color": "red"}
//	null
//
// Each value is decoded independently. A value that is well-formed JSON but
// not valid rich text yields an Item carrying the error, and reading goes on
// with the next value. Malformed JSON ends the stream.
package stream

import (
	"errors"
	"fmt"

	"github.com/Neumenon/richtext/styled"
)

// ItemKind classifies a decoded item.
type ItemKind uint8

const (
	KindText   ItemKind = 0 // decoded text, possibly empty
	KindAbsent ItemKind = 1 // JSON null
	KindError  ItemKind = 2 // rejected value, see Item.Err
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindAbsent:
		return "absent"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Item is one value read from the stream.
type Item struct {
	Index  int          // zero-based position in the stream
	Offset int64        // input offset where reading of the value started
	Text   *styled.Text // nil when absent or rejected
	Err    error        // per-value decode error, always a *richtext.DecodeError
}

// Kind reports what the item holds.
func (it *Item) Kind() ItemKind {
	switch {
	case it.Err != nil:
		return KindError
	case it.Text == nil:
		return KindAbsent
	default:
		return KindText
	}
}

// ErrTooManyItems is returned by Next when the stream holds more values
// than the configured maximum.
var ErrTooManyItems = errors.New("stream: too many items")

// Stats counts the items read so far.
type Stats struct {
	Items  int
	Absent int
	Failed int
}

func (s *Stats) record(it *Item) {
	s.Items++
	switch it.Kind() {
	case KindAbsent:
		s.Absent++
	case KindError:
		s.Failed++
	}
}
