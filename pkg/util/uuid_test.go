package util

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xD9}

	d := NewDigest(bytes.NewReader(data))
	got, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	assert.Equal(t, Md5ThenHex(data), d.Hex())

	id, err := uuid.Parse(d.UUID())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestDigest_Stable(t *testing.T) {
	read := func(b []byte) *Digest {
		d := NewDigest(bytes.NewReader(b))
		_, _ = io.Copy(io.Discard, d)
		return d
	}
	a := read([]byte("same"))
	b := read([]byte("same"))
	c := read([]byte("other"))

	assert.Equal(t, a.UUID(), b.UUID())
	assert.NotEqual(t, a.UUID(), c.UUID())
}
