package util

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"

	"github.com/google/uuid"
)

// Md5ThenHex is a quick hasher
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Digest hashes everything read through it, so a stream can be identified
// without holding it in memory.
type Digest struct {
	r io.Reader
	h hash.Hash
}

// NewDigest wraps r.
func NewDigest(r io.Reader) *Digest {
	return &Digest{r: r, h: md5.New()}
}

func (d *Digest) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	d.h.Write(p[:n])
	return n, err
}

// Hex is the md5 of the bytes read so far.
func (d *Digest) Hex() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

// UUID is a stable identifier derived from the md5 of the bytes read so far.
func (d *Digest) UUID() string {
	id, err := uuid.FromBytes(d.h.Sum(nil))
	if err != nil {
		return ""
	}
	return id.String()
}
