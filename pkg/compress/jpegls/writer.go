package jpegls

import (
	"bufio"
	"errors"
	"io"
)

// Writer emits marker segments to an underlying io.Writer.
// It does not entropy code anything, scan data is passed through Write as is.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	if b, ok := w.(*bufio.Writer); ok {
		return &Writer{w: b}
	}
	return &Writer{w: bufio.NewWriter(w)}
}

// Write copies raw bytes, typically entropy coded scan data.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteMarker writes 0xFF followed by code.
func (w *Writer) WriteMarker(code byte) error {
	if err := w.w.WriteByte(Prefix); err != nil {
		return err
	}
	return w.w.WriteByte(code)
}

// WriteStartOfImage writes SOI.
func (w *Writer) WriteStartOfImage() error {
	return w.WriteMarker(MarkerSOI)
}

// WriteEndOfImage writes EOI.
func (w *Writer) WriteEndOfImage() error {
	return w.WriteMarker(MarkerEOI)
}

// WriteStartOfFrame writes a SOF55 segment.
func (w *Writer) WriteStartOfFrame(fh FrameHeader) error {
	// Length: 2 + 1 + 2 + 2 + 1 + Nf*3 = 8 + Nf*3
	length := 8 + len(fh.Components)*3

	if err := w.WriteMarker(MarkerSOF55); err != nil {
		return err
	}
	if err := w.writeWord(length); err != nil {
		return err
	}
	if err := w.w.WriteByte(byte(fh.Precision)); err != nil {
		return err
	}
	if err := w.writeWord(fh.Height); err != nil {
		return err
	}
	if err := w.writeWord(fh.Width); err != nil {
		return err
	}
	if err := w.w.WriteByte(byte(len(fh.Components))); err != nil {
		return err
	}
	for _, c := range fh.Components {
		if _, err := w.w.Write([]byte{byte(c.ID), byte(c.SamplingFactor), byte(c.QuantTable)}); err != nil {
			return err
		}
	}
	return nil
}

// WriteStartOfScan writes a SOS segment.
func (w *Writer) WriteStartOfScan(sh ScanHeader) error {
	// Length: 2 + 1 + Ns*2 + 3 = 6 + Ns*2
	length := 6 + len(sh.Components)*2

	if err := w.WriteMarker(MarkerSOS); err != nil {
		return err
	}
	if err := w.writeWord(length); err != nil {
		return err
	}
	if err := w.w.WriteByte(byte(len(sh.Components))); err != nil {
		return err
	}
	for _, c := range sh.Components {
		if _, err := w.w.Write([]byte{byte(c.ID), byte(c.MappingTable)}); err != nil {
			return err
		}
	}
	_, err := w.w.Write([]byte{byte(sh.Near), byte(sh.ILV), byte(sh.PointTransform)})
	return err
}

// WritePresetCodingParameters writes an LSE segment with id 1.
func (w *Writer) WritePresetCodingParameters(p PresetCodingParameters) error {
	if err := w.WriteMarker(MarkerLSE); err != nil {
		return err
	}
	// Length: 2 + 1 + 5*2
	if err := w.writeWord(13); err != nil {
		return err
	}
	if err := w.w.WriteByte(LSEPresetCodingParameters); err != nil {
		return err
	}
	for _, v := range []int{p.MaxVal, p.T1, p.T2, p.T3, p.Reset} {
		if err := w.writeWord(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteRestartInterval writes a DRI segment with a 16 bit interval.
func (w *Writer) WriteRestartInterval(interval int) error {
	if err := w.WriteMarker(MarkerDRI); err != nil {
		return err
	}
	if err := w.writeWord(4); err != nil {
		return err
	}
	return w.writeWord(interval)
}

// WriteComment writes a COM segment.
func (w *Writer) WriteComment(comment []byte) error {
	return w.writeSegment(MarkerCOM, comment)
}

// WriteApplicationData writes an APPn segment, n in 0..15.
func (w *Writer) WriteApplicationData(n int, data []byte) error {
	if n < 0 || n > 15 {
		return errors.New("application data id out of range")
	}
	return w.writeSegment(MarkerAPP0+byte(n), data)
}

func (w *Writer) writeSegment(code byte, payload []byte) error {
	if len(payload) > 0xFFFF-2 {
		return errors.New("segment payload too large")
	}
	if err := w.WriteMarker(code); err != nil {
		return err
	}
	if err := w.writeWord(len(payload) + 2); err != nil {
		return err
	}
	_, err := w.w.Write(payload)
	return err
}

func (w *Writer) writeWord(v int) error {
	if err := w.w.WriteByte(byte(v >> 8)); err != nil {
		return err
	}
	return w.w.WriteByte(byte(v & 0xFF))
}
