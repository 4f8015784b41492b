package jpegdump

import (
	"encoding/json"
	"fmt"
	"io"
)

// Line is one printed record of a dump.
type Line struct {
	Offset int64  `json:"offset"`
	Field  bool   `json:"field,omitempty"`
	Text   string `json:"text"`
}

// Sink receives the lines of a dump in order.
type Sink interface {
	WriteLine(Line) error
}

// TextSink renders lines as `<offset> <text>` with the offset right aligned in
// 8 columns and field lines indented by two extra spaces.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) WriteLine(l Line) error {
	indent := ""
	if l.Field {
		indent = "  "
	}
	_, err := fmt.Fprintf(s.w, "%8d %s%s\n", l.Offset, indent, l.Text)
	return err
}

// JSONSink writes one JSON object per line.
type JSONSink struct {
	enc *json.Encoder
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

func (s *JSONSink) WriteLine(l Line) error {
	return s.enc.Encode(l)
}
