// Package hashids implements flightdocs.IDCodec using Hashids, producing
// short lowercase quick codes for numeric document IDs.
package hashids

import (
	"fmt"

	"github.com/alces-flight/flightdocs"
	"github.com/speps/go-hashids/v2"
)

// Default codec parameters. Codes produced with other parameters are not
// interchangeable, so these must match every other Flight Docs client.
const (
	DefaultSalt     = "flight-docs"
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"
)

// Ensure Codec implements flightdocs.IDCodec at compile time.
var _ flightdocs.IDCodec = (*Codec)(nil)

// Codec encodes document IDs as quick codes.
type Codec struct {
	h *hashids.HashID
}

// NewCodec returns a Codec using DefaultSalt and DefaultAlphabet.
func NewCodec() (*Codec, error) {
	return NewCodecWithSalt(DefaultSalt)
}

// NewCodecWithSalt returns a Codec using the given salt.
func NewCodecWithSalt(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.Alphabet = DefaultAlphabet
	hd.MinLength = 0

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("failed to create hashids codec: %w", err)
	}
	return &Codec{h: h}, nil
}

// Encode returns the quick code for id. A trailing zero is encoded alongside
// the ID to keep codes compatible with existing clients.
func (c *Codec) Encode(id int) (string, error) {
	if id < 0 {
		return "", flightdocs.Errorf(flightdocs.EINVALID, "invalid document id %d", id)
	}
	return c.h.Encode([]int{id, 0})
}

// Decode returns the ID behind a quick code. Strings outside the alphabet,
// or that do not re-encode to themselves, are not quick codes.
func (c *Codec) Decode(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	ids, err := c.h.DecodeWithError(s)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
