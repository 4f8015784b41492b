// Package jpegls holds the JPEG-LS (ITU-T T.87 | ISO/IEC 14495-1) marker
// vocabulary shared with baseline JPEG (ITU-T T.81 | ISO/IEC 10918-1), the
// decoded segment headers and a Writer for emitting marker segments.
package jpegls

import "fmt"

// Marker codes, the byte following the 0xFF prefix.
const (
	MarkerRST0  byte = 0xD0 // Restart with modulo 8 count 0
	MarkerRST7  byte = 0xD7 // Restart with modulo 8 count 7
	MarkerSOI   byte = 0xD8 // Start of Image
	MarkerEOI   byte = 0xD9 // End of Image
	MarkerSOS   byte = 0xDA // Start of Scan
	MarkerDRI   byte = 0xDD // Define Restart Interval
	MarkerAPP0  byte = 0xE0 // Application data 0 (JFIF)
	MarkerAPP7  byte = 0xE7 // Application data 7 (HP color transform)
	MarkerAPP8  byte = 0xE8 // Application data 8 (SPIFF)
	MarkerAPP14 byte = 0xEE // Application data 14 (Adobe)
	MarkerAPP15 byte = 0xEF // Application data 15
	MarkerSOF55 byte = 0xF7 // Start of Frame (JPEG-LS)
	MarkerLSE   byte = 0xF8 // JPEG-LS Extension (Parameters)
	MarkerCOM   byte = 0xFE // Comment
)

// Prefix is the byte that introduces every marker.
const Prefix byte = 0xFF

// Specification references printed next to marker names.
const (
	RefT81 = "ITU T.81/IEC 10918-1"
	RefT87 = "ITU T.87/IEC 14495-1 JPEG LS"
)

// IsRST reports whether code is one of the eight restart markers.
func IsRST(code byte) bool {
	return code >= MarkerRST0 && code <= MarkerRST7
}

// IsAPP reports whether code is an application data marker.
func IsAPP(code byte) bool {
	return code >= MarkerAPP0 && code <= MarkerAPP15
}

// Code returns the two byte marker value, e.g. 0xFFD8.
func Code(code byte) uint16 {
	return uint16(Prefix)<<8 | uint16(code)
}

// Name returns the short marker name, empty for codes this package does not know.
func Name(code byte) string {
	switch {
	case code == MarkerSOI:
		return "SOI"
	case code == MarkerEOI:
		return "EOI"
	case code == MarkerSOS:
		return "SOS"
	case code == MarkerDRI:
		return "DRI"
	case code == MarkerSOF55:
		return "SOF_55"
	case code == MarkerLSE:
		return "LSE"
	case code == MarkerCOM:
		return "COM"
	case IsRST(code):
		return fmt.Sprintf("RST%d", code-MarkerRST0)
	case IsAPP(code):
		return fmt.Sprintf("APP%d", code-MarkerAPP0)
	}
	return ""
}

// Description returns the long marker name.
func Description(code byte) string {
	switch {
	case code == MarkerSOI:
		return "Start Of Image"
	case code == MarkerEOI:
		return "End Of Image"
	case code == MarkerSOS:
		return "Start Of Scan"
	case code == MarkerDRI:
		return "Define Restart Interval"
	case code == MarkerSOF55:
		return "Start Of Frame JPEG-LS"
	case code == MarkerLSE:
		return "JPEG-LS Extended Parameters"
	case code == MarkerCOM:
		return "Comment"
	case IsRST(code):
		return fmt.Sprintf("Restart Marker %d", code-MarkerRST0)
	case code == MarkerAPP0:
		return "Application Data 0, JFIF"
	case code == MarkerAPP7:
		return "Application Data 7, HP color transform"
	case code == MarkerAPP8:
		return "Application Data 8, SPIFF"
	case code == MarkerAPP14:
		return "Application Data 14, Adobe"
	case IsAPP(code):
		return fmt.Sprintf("Application Data %d", code-MarkerAPP0)
	}
	return ""
}

// Reference returns the standard that defines the marker.
func Reference(code byte) string {
	switch code {
	case MarkerSOF55, MarkerLSE:
		return RefT87
	}
	return RefT81
}
