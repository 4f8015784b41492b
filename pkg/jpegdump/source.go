package jpegdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned in strict mode when a segment ends before all of its fields were read.
var ErrTruncated = errors.New("truncated segment")

// Source is a forward only byte reader that tracks how many bytes were consumed.
type Source struct {
	r      io.ByteReader
	pos    int64
	strict bool
}

// NewSource wraps r, buffering it unless it already is an io.ByteReader.
func NewSource(r io.Reader) *Source {
	if br, ok := r.(io.ByteReader); ok {
		return &Source{r: br}
	}
	return &Source{r: bufio.NewReader(r)}
}

// Position is the number of bytes consumed so far.
func (s *Source) Position() int64 {
	return s.pos
}

// ReadByte returns the next byte, io.EOF at the end of the stream or the read failure.
func (s *Source) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

// ReadUint reads an n byte (1..4) big-endian unsigned integer.
// Bytes missing at the end of the stream read as zero unless the source is strict.
func (s *Source) ReadUint(n int) (uint32, error) {
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("invalid integer width %d", n)
	}
	start := s.pos
	var v uint32
	for i := 0; i < n; i++ {
		b, err := s.ReadByte()
		switch {
		case errors.Is(err, io.EOF):
			if s.strict {
				return 0, fmt.Errorf("%w: %d of %d bytes at offset %d", ErrTruncated, i, n, start)
			}
			return v << (8 * (n - i)), nil
		case err != nil:
			return 0, err
		}
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// Skip discards up to n bytes and returns how many were discarded.
func (s *Source) Skip(n int) (int, error) {
	start := s.pos
	for i := 0; i < n; i++ {
		_, err := s.ReadByte()
		switch {
		case errors.Is(err, io.EOF):
			if s.strict {
				return i, fmt.Errorf("%w: %d of %d bytes at offset %d", ErrTruncated, i, n, start)
			}
			return i, nil
		case err != nil:
			return i, err
		}
	}
	return n, nil
}

// ReadBytes reads up to n bytes, returning fewer only at the end of the stream.
func (s *Source) ReadBytes(n int) ([]byte, error) {
	start := s.pos
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := s.ReadByte()
		switch {
		case errors.Is(err, io.EOF):
			if s.strict {
				return buf, fmt.Errorf("%w: %d of %d bytes at offset %d", ErrTruncated, i, n, start)
			}
			return buf, nil
		case err != nil:
			return buf, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}
