package jpegls

// FrameHeader is the SOF55 payload (ITU-T T.87 C.2.2)
type FrameHeader struct {
	Precision  int // P, bits per sample
	Height     int // Y, number of lines
	Width      int // X, samples per line
	Components []FrameComponent
}

// FrameComponent is one component specification of a frame header
type FrameComponent struct {
	ID             int // Ci
	SamplingFactor int // Hi in the high nibble, Vi in the low nibble
	QuantTable     int // Tqi, reserved in JPEG-LS
}

// H returns the horizontal sampling factor
func (c FrameComponent) H() int { return c.SamplingFactor >> 4 }

// V returns the vertical sampling factor
func (c FrameComponent) V() int { return c.SamplingFactor & 0x0F }

// InterleaveMode identifies how components are interleaved in a scan (ILV)
type InterleaveMode byte

const (
	InterleaveNone   InterleaveMode = 0
	InterleaveLine   InterleaveMode = 1
	InterleaveSample InterleaveMode = 2
)

// String returns the interleave mode name
func (m InterleaveMode) String() string {
	switch m {
	case InterleaveNone:
		return "None"
	case InterleaveLine:
		return "Line"
	case InterleaveSample:
		return "Sample"
	default:
		return "Unknown"
	}
}

// ScanHeader is the SOS payload as used by JPEG-LS (ITU-T T.87 C.2.3)
type ScanHeader struct {
	Components     []ScanComponent
	Near           int // Near-lossless parameter (0 = lossless)
	ILV            InterleaveMode
	PointTransform int
}

// ScanComponent is one component selector of a scan header
type ScanComponent struct {
	ID           int // Csi
	MappingTable int // TMi, 0 when no mapping table is used
}

// LSE parameter ids (ITU-T T.87 C.2.4.1)
const (
	LSEPresetCodingParameters byte = 1
)

// PresetCodingParameters is the LSE id 1 payload
type PresetCodingParameters struct {
	MaxVal int
	T1     int
	T2     int
	T3     int
	Reset  int
}
