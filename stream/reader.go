package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"go.uber.org/zap"

	"github.com/Neumenon/richtext/richtext"
)

// Reader reads rich-text values from an io.Reader.
type Reader struct {
	dec      *jsontext.Decoder
	decoder  *richtext.Decoder
	maxItems int
	logger   *zap.Logger
	stats    Stats
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithDecoder sets the rich-text decoder (default: richtext.NewDecoder()).
func WithDecoder(d *richtext.Decoder) ReaderOption {
	return func(r *Reader) {
		r.decoder = d
	}
}

// WithMaxItems limits the number of values in the stream (default: no limit).
func WithMaxItems(max int) ReaderOption {
	return func(r *Reader) {
		r.maxItems = max
	}
}

// WithLogger sets the logger used for per-item tracing.
func WithLogger(l *zap.Logger) ReaderOption {
	return func(r *Reader) {
		r.logger = l
	}
}

// NewReader creates a new rich-text stream reader.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		dec: jsontext.NewDecoder(r),
	}
	for _, opt := range opts {
		opt(reader)
	}
	if reader.decoder == nil {
		reader.decoder = richtext.NewDecoder()
	}
	if reader.logger == nil {
		reader.logger = zap.NewNop()
	}
	return reader
}

// Next reads and decodes the next value.
// Returns io.EOF when no more values are available.
//
// A value that is not valid rich text is returned as an Item with Err set
// and a nil error. The returned error is reserved for malformed JSON, read
// failures and ErrTooManyItems; after one of those the Reader is done.
func (r *Reader) Next() (*Item, error) {
	if r.dec.PeekKind() == 0 {
		// End of input or a syntax error; the read reports which.
		_, err := r.dec.ReadToken()
		if err == nil || errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read item %d: %w", r.stats.Items, err)
	}

	if r.maxItems > 0 && r.stats.Items >= r.maxItems {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyItems, r.maxItems)
	}

	item := &Item{Index: r.stats.Items, Offset: r.dec.InputOffset()}
	text, err := r.decoder.Decode(r.dec)
	if err != nil {
		var decodeErr *richtext.DecodeError
		if !errors.As(err, &decodeErr) {
			return nil, fmt.Errorf("read item %d: %w", item.Index, err)
		}
		if err := r.unwind(); err != nil {
			return nil, fmt.Errorf("read item %d: %w", item.Index, err)
		}
		item.Err = err
		r.logger.Debug("rich text item rejected", zap.Int("index", item.Index), zap.Error(err))
	}
	item.Text = text

	r.stats.record(item)
	return item, nil
}

// unwind skips whatever is left of a rejected value so the reader is back
// at the top level.
func (r *Reader) unwind() error {
	for r.dec.StackDepth() > 0 {
		switch r.dec.PeekKind() {
		case ']', '}':
			if _, err := r.dec.ReadToken(); err != nil {
				return err
			}
		case 0:
			_, err := r.dec.ReadToken()
			if err == nil || errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return err
		default:
			if err := r.dec.SkipValue(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats returns the counts of items read so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// InputOffset returns the number of input bytes consumed.
func (r *Reader) InputOffset() int64 {
	return r.dec.InputOffset()
}

// ReadAll reads items until the end of the stream.
func (r *Reader) ReadAll() ([]*Item, error) {
	var items []*Item
	for {
		item, err := r.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
