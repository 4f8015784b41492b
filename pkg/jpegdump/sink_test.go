package jpegdump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)
	require.NoError(t, s.WriteLine(Line{Offset: 0, Text: "Marker 0xFFF7"}))
	require.NoError(t, s.WriteLine(Line{Offset: 12345, Field: true, Text: "Size = 11"}))

	assert.Equal(t, "       0 Marker 0xFFF7\n   12345   Size = 11\n", buf.String())
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONSink(&buf)
	require.NoError(t, s.WriteLine(Line{Offset: 0, Text: "Marker 0xFFD8"}))
	require.NoError(t, s.WriteLine(Line{Offset: 4, Field: true, Text: "Size = 11"}))

	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, rows, 2)
	assert.JSONEq(t, `{"offset":0,"text":"Marker 0xFFD8"}`, rows[0])

	var l Line
	require.NoError(t, json.Unmarshal([]byte(rows[1]), &l))
	assert.Equal(t, Line{Offset: 4, Field: true, Text: "Size = 11"}, l)
}
