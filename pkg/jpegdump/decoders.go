package jpegdump

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/jpegdump/pkg/compress/jpegls"
	"golang.org/x/text/encoding/charmap"
)

// decoder prints the payload of one marker kind. The header line has already
// been printed and the source is positioned right after the marker code.
type decoder interface {
	decode(ctx context.Context, s *Scanner, code byte) error
}

func newDecoderTable() map[byte]decoder {
	table := map[byte]decoder{
		jpegls.MarkerSOI:   standalone{},
		jpegls.MarkerEOI:   standalone{},
		jpegls.MarkerSOF55: startOfFrame{},
		jpegls.MarkerSOS:   startOfScan{},
		jpegls.MarkerLSE:   extendedParameters{},
		jpegls.MarkerDRI:   restartInterval{},
		jpegls.MarkerCOM:   comment{},
	}
	for c := jpegls.MarkerRST0; c <= jpegls.MarkerRST7; c++ {
		table[c] = standalone{}
	}
	for c := jpegls.MarkerAPP0; c <= jpegls.MarkerAPP15; c++ {
		table[c] = applicationData{}
	}
	return table
}

// standalone markers carry no payload.
type standalone struct{}

func (standalone) decode(context.Context, *Scanner, byte) error { return nil }

type startOfFrame struct{}

func (startOfFrame) decode(ctx context.Context, s *Scanner, _ byte) error {
	var fh jpegls.FrameHeader
	var err error
	if _, err = s.readField(2, "Size"); err != nil {
		return err
	}
	if fh.Precision, err = s.readField(1, "Sample precision (P)"); err != nil {
		return err
	}
	if fh.Height, err = s.readField(2, "Number of lines (Y)"); err != nil {
		return err
	}
	if fh.Width, err = s.readField(2, "Number of samples per line (X)"); err != nil {
		return err
	}
	count, err := s.readField(1, "Number of image components in a frame (Nf)")
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		var c jpegls.FrameComponent
		if c.ID, err = s.readField(1, "Component identifier (Ci)"); err != nil {
			return err
		}
		if c.SamplingFactor, err = s.readFieldf(1, func(v int) string {
			f := jpegls.FrameComponent{SamplingFactor: v}
			return fmt.Sprintf("H and V sampling factor (Hi + Vi) = %d (H = %d, V = %d)", v, f.H(), f.V())
		}); err != nil {
			return err
		}
		if c.QuantTable, err = s.readField(1, "Quantization table (Tqi) [reserved, should be 0]"); err != nil {
			return err
		}
		fh.Components = append(fh.Components, c)
	}
	slog.DebugContext(ctx, "frame header",
		"precision", fh.Precision,
		"width", fh.Width,
		"height", fh.Height,
		"components", len(fh.Components),
	)
	return nil
}

type startOfScan struct{}

func (startOfScan) decode(ctx context.Context, s *Scanner, _ byte) error {
	var sh jpegls.ScanHeader
	if _, err := s.readField(2, "Size"); err != nil {
		return err
	}
	count, err := s.readField(1, "Component Count (Ns)")
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		var c jpegls.ScanComponent
		if c.ID, err = s.readField(1, "Component identifier (Ci)"); err != nil {
			return err
		}
		if c.MappingTable, err = s.readFieldf(1, func(v int) string {
			if v == 0 {
				return "Mapping table selector (TMi) = 0 (None)"
			}
			return fmt.Sprintf("Mapping table selector (TMi) = %d", v)
		}); err != nil {
			return err
		}
		sh.Components = append(sh.Components, c)
	}
	if sh.Near, err = s.readField(1, "Near lossless (NEAR)"); err != nil {
		return err
	}
	ilv, err := s.readFieldf(1, func(v int) string {
		return fmt.Sprintf("Interleave mode (ILV) = %d (%s)", v, jpegls.InterleaveMode(v))
	})
	if err != nil {
		return err
	}
	sh.ILV = jpegls.InterleaveMode(ilv)
	if sh.PointTransform, err = s.readField(1, "Point Transform (Al)"); err != nil {
		return err
	}
	slog.DebugContext(ctx, "scan header",
		"components", len(sh.Components),
		"near", sh.Near,
		"ilv", sh.ILV.String(),
	)
	return nil
}

type extendedParameters struct{}

func (extendedParameters) decode(ctx context.Context, s *Scanner, _ byte) error {
	if _, err := s.readField(2, "Size"); err != nil {
		return err
	}
	id, err := s.readFieldf(1, func(v int) string {
		if byte(v) == jpegls.LSEPresetCodingParameters {
			return fmt.Sprintf("Type (ID) = %d (Preset coding parameters)", v)
		}
		return fmt.Sprintf("Type (ID) = %d (Unknown)", v)
	})
	if err != nil {
		return err
	}
	if byte(id) != jpegls.LSEPresetCodingParameters {
		return nil
	}

	var p jpegls.PresetCodingParameters
	if p.MaxVal, err = s.readField(2, "Maximum possible sample value (MAXVAL)"); err != nil {
		return err
	}
	if p.T1, err = s.readField(2, "Threshold 1 (T1)"); err != nil {
		return err
	}
	if p.T2, err = s.readField(2, "Threshold 2 (T2)"); err != nil {
		return err
	}
	if p.T3, err = s.readField(2, "Threshold 3 (T3)"); err != nil {
		return err
	}
	if p.Reset, err = s.readField(2, "Reset value (RESET)"); err != nil {
		return err
	}
	slog.DebugContext(ctx, "preset coding parameters",
		"maxval", p.MaxVal, "t1", p.T1, "t2", p.T2, "t3", p.T3, "reset", p.Reset)
	return nil
}

// restartInterval handles DRI. JPEG-LS allows a 3 or 4 byte interval (T.87 C.2.5).
type restartInterval struct{}

func (restartInterval) decode(_ context.Context, s *Scanner, _ byte) error {
	size, err := s.readField(2, "Size")
	if err != nil {
		return err
	}
	n := size - 2
	if n < 2 || n > 4 {
		n = 2
	}
	_, err = s.readField(n, "Restart interval (Ri)")
	return err
}

// maxIdentifier bounds how much of an APPn payload is inspected for an identifier.
const maxIdentifier = 16

type applicationData struct{}

func (applicationData) decode(_ context.Context, s *Scanner, _ byte) error {
	size, err := s.readField(2, "Size")
	if err != nil {
		return err
	}
	n := max(size-2, 0)

	offset := s.src.Position()
	head, err := s.src.ReadBytes(min(n, maxIdentifier))
	if err != nil {
		return fmt.Errorf("read failed at offset %d: %w", offset, err)
	}
	if id := identifier(head); id != "" {
		if err := s.emit(offset, true, "Identifier = %q", id); err != nil {
			return err
		}
	}
	skipped, err := s.src.Skip(n - len(head))
	if err != nil {
		return fmt.Errorf("read failed at offset %d: %w", offset, err)
	}
	return s.emit(offset, true, "Application data = %d bytes", len(head)+skipped)
}

// identifier returns the leading printable ASCII run of an APPn payload, such
// as "JFIF", "SPIFF", "Adobe" or "mrfx", or "" when it is too short to be one.
func identifier(b []byte) string {
	end := 0
	for end < len(b) && b[end] >= 0x20 && b[end] <= 0x7E {
		end++
	}
	if end < 3 {
		return ""
	}
	return string(b[:end])
}

type comment struct{}

func (comment) decode(_ context.Context, s *Scanner, _ byte) error {
	size, err := s.readField(2, "Size")
	if err != nil {
		return err
	}
	offset := s.src.Position()
	raw, err := s.src.ReadBytes(max(size-2, 0))
	if err != nil {
		return fmt.Errorf("read failed at offset %d: %w", offset, err)
	}
	// COM has no declared character set, Latin-1 maps every byte.
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return fmt.Errorf("decode comment at offset %d: %w", offset, err)
	}
	return s.emit(offset, true, "Comment = %q", text)
}
