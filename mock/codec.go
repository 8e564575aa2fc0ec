package mock

import "github.com/alces-flight/flightdocs"

var _ flightdocs.IDCodec = (*IDCodec)(nil)

// IDCodec is a mock implementation of flightdocs.IDCodec.
type IDCodec struct {
	EncodeFn func(id int) (string, error)
	DecodeFn func(s string) (int, bool)
}

func (c *IDCodec) Encode(id int) (string, error) {
	return c.EncodeFn(id)
}

func (c *IDCodec) Decode(s string) (int, bool) {
	return c.DecodeFn(s)
}
