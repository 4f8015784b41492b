package jpegls

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Segments(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteStartOfImage())
	require.NoError(t, w.WriteStartOfFrame(FrameHeader{
		Precision: 8, Height: 16, Width: 16,
		Components: []FrameComponent{{ID: 1, SamplingFactor: 0x11}},
	}))
	require.NoError(t, w.WriteStartOfScan(ScanHeader{
		Components: []ScanComponent{{ID: 1}},
		Near:       2,
		ILV:        InterleaveLine,
	}))
	require.NoError(t, w.WriteEndOfImage())
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{
		0xFF, 0xD8,
		0xFF, 0xF7, 0x00, 0x0B, 0x08, 0x00, 0x10, 0x00, 0x10, 0x01, 0x01, 0x11, 0x00,
		0xFF, 0xDA, 0x00, 0x08, 0x01, 0x01, 0x00, 0x02, 0x01, 0x00,
		0xFF, 0xD9,
	}, buf.Bytes())
}

func TestWriter_PresetCodingParameters(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePresetCodingParameters(PresetCodingParameters{
		MaxVal: 4095, T1: 18, T2: 67, T3: 276, Reset: 64,
	}))
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{
		0xFF, 0xF8, 0x00, 0x0D, 0x01,
		0x0F, 0xFF, 0x00, 0x12, 0x00, 0x43, 0x01, 0x14, 0x00, 0x40,
	}, buf.Bytes())
}

func TestWriter_VariableSegments(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRestartInterval(0x0102))
	require.NoError(t, w.WriteComment([]byte("hi")))
	require.NoError(t, w.WriteApplicationData(8, []byte("SPIFF\x00")))
	require.Error(t, w.WriteApplicationData(16, nil))
	require.Error(t, w.WriteComment(make([]byte, 0x10000)))
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{
		0xFF, 0xDD, 0x00, 0x04, 0x01, 0x02,
		0xFF, 0xFE, 0x00, 0x04, 'h', 'i',
		0xFF, 0xE8, 0x00, 0x08, 'S', 'P', 'I', 'F', 'F', 0x00,
	}, buf.Bytes())
}
