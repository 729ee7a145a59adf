package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is one status update for the bar.
type Record struct {
	Text string `json:"text"`
}

// Emitter writes records as JSON lines, flushing after each one.
type Emitter struct {
	w   io.Writer
	enc *json.Encoder
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	enc := json.NewEncoder(w)
	// Markup must reach the bar verbatim, not as \u003c escapes.
	enc.SetEscapeHTML(false)
	return &Emitter{w: w, enc: enc}
}

// Emit writes one record containing text.
func (e *Emitter) Emit(text string) error {
	if err := e.enc.Encode(Record{Text: text}); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	if f, ok := e.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}
