// Package jpegdump walks a JPEG / JPEG-LS byte stream and prints every marker
// segment it finds with its offset and decoded fields.
//
// The scan is single pass and forward only. Before a JPEG-LS frame header has
// been seen any 0xFF followed by a non zero byte is a marker. Once SOF55 has
// been seen the scanner switches to the JPEG-LS rule: inside entropy coded data
// an 0xFF is only followed by a marker when the next byte has its high bit set.
package jpegdump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jpfielding/jpegdump/pkg/compress/jpegls"
)

// Options tune a Scanner.
type Options struct {
	// Strict makes a segment that ends early fail with ErrTruncated instead of
	// reading the missing fields as zero.
	Strict bool
}

// Scanner dumps the marker segments of one stream.
type Scanner struct {
	src      *Source
	out      Sink
	decoders map[byte]decoder

	entropyAware bool // set once SOF55 has been seen, never cleared
	markers      int
	skipped      int
}

// NewScanner returns a Scanner reading r and writing lines to out.
func NewScanner(r io.Reader, out Sink, opts *Options) *Scanner {
	src := NewSource(r)
	if opts != nil {
		src.strict = opts.Strict
	}
	return &Scanner{src: src, out: out, decoders: newDecoderTable()}
}

// Position is the number of bytes consumed so far.
func (s *Scanner) Position() int64 { return s.src.Position() }

// Markers is the number of markers printed so far.
func (s *Scanner) Markers() int { return s.markers }

// Skipped is the number of 0xFF pairs discarded as entropy coded data.
func (s *Scanner) Skipped() int { return s.skipped }

// EntropyAware reports whether a JPEG-LS frame header has been seen.
func (s *Scanner) EntropyAware() bool { return s.entropyAware }

// Scan reads the stream to its end. It returns nil at the end of the stream and
// the first read or sink failure otherwise.
func (s *Scanner) Scan(ctx context.Context) error {
	for {
		probe, err := s.src.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read failed at offset %d: %w", s.src.Position(), err)
		}
		if probe != jpegls.Prefix {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		code, err := s.src.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read failed at offset %d: %w", s.src.Position(), err)
		}
		if !s.isMarkerCode(code) {
			s.skipped++
			continue
		}
		if err := s.dispatch(ctx, code); err != nil {
			return err
		}
		if code == jpegls.MarkerSOF55 && !s.entropyAware {
			s.entropyAware = true
			slog.DebugContext(ctx, "JPEG-LS frame seen, using high bit marker rule", "offset", s.src.Position())
		}
	}
	slog.DebugContext(ctx, "scan complete",
		"bytes", s.src.Position(),
		"markers", s.markers,
		"skipped", s.skipped,
	)
	return nil
}

// isMarkerCode decides whether the byte after an 0xFF starts a marker.
func (s *Scanner) isMarkerCode(code byte) bool {
	if s.entropyAware {
		return code&0x80 != 0
	}
	return code != 0
}

// dispatch prints the segment introduced by code.
func (s *Scanner) dispatch(ctx context.Context, code byte) error {
	s.markers++
	d, ok := s.decoders[code]
	if !ok {
		return s.emit(s.src.Position()-2, false, "Marker 0x%04X", jpegls.Code(code))
	}
	if err := s.emit(s.src.Position()-2, false, "Marker 0x%04X: %s (%s), defined in %s",
		jpegls.Code(code), jpegls.Name(code), jpegls.Description(code), jpegls.Reference(code)); err != nil {
		return err
	}
	return d.decode(ctx, s, code)
}

func (s *Scanner) emit(offset int64, field bool, format string, args ...any) error {
	if err := s.out.WriteLine(Line{Offset: offset, Field: field, Text: fmt.Sprintf(format, args...)}); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// readField reads an n byte integer and prints it as `label = value`.
func (s *Scanner) readField(n int, label string) (int, error) {
	offset := s.src.Position()
	v, err := s.src.ReadUint(n)
	if err != nil {
		return 0, fmt.Errorf("read failed at offset %d: %w", offset, err)
	}
	return int(v), s.emit(offset, true, "%s = %d", label, v)
}

// readFieldf reads an n byte integer and prints it with format, which receives the value.
func (s *Scanner) readFieldf(n int, format func(v int) string) (int, error) {
	offset := s.src.Position()
	v, err := s.src.ReadUint(n)
	if err != nil {
		return 0, fmt.Errorf("read failed at offset %d: %w", offset, err)
	}
	return int(v), s.emit(offset, true, "%s", format(int(v)))
}
