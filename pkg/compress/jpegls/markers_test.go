package jpegls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		code byte
		name string
		desc string
		ref  string
	}{
		{MarkerSOI, "SOI", "Start Of Image", RefT81},
		{MarkerEOI, "EOI", "End Of Image", RefT81},
		{MarkerSOS, "SOS", "Start Of Scan", RefT81},
		{MarkerDRI, "DRI", "Define Restart Interval", RefT81},
		{MarkerSOF55, "SOF_55", "Start Of Frame JPEG-LS", RefT87},
		{MarkerLSE, "LSE", "JPEG-LS Extended Parameters", RefT87},
		{MarkerCOM, "COM", "Comment", RefT81},
		{0xD3, "RST3", "Restart Marker 3", RefT81},
		{MarkerAPP7, "APP7", "Application Data 7, HP color transform", RefT81},
		{MarkerAPP14, "APP14", "Application Data 14, Adobe", RefT81},
		{0xE2, "APP2", "Application Data 2", RefT81},
		{0xC0, "", "", RefT81},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, Name(tt.code))
			assert.Equal(t, tt.desc, Description(tt.code))
			assert.Equal(t, tt.ref, Reference(tt.code))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, uint16(0xFFD8), Code(MarkerSOI))
	assert.Equal(t, uint16(0xFFF7), Code(MarkerSOF55))
}

func TestIsRSTAndIsAPP(t *testing.T) {
	assert.True(t, IsRST(MarkerRST0))
	assert.True(t, IsRST(MarkerRST7))
	assert.False(t, IsRST(MarkerSOI))
	assert.True(t, IsAPP(MarkerAPP0))
	assert.True(t, IsAPP(MarkerAPP15))
	assert.False(t, IsAPP(MarkerSOF55))
}

func TestInterleaveMode_String(t *testing.T) {
	assert.Equal(t, "None", InterleaveNone.String())
	assert.Equal(t, "Line", InterleaveLine.String())
	assert.Equal(t, "Sample", InterleaveSample.String())
	assert.Equal(t, "Unknown", InterleaveMode(3).String())
}

func TestFrameComponent_SamplingFactors(t *testing.T) {
	c := FrameComponent{SamplingFactor: 0x21}
	assert.Equal(t, 2, c.H())
	assert.Equal(t, 1, c.V())
}
