package flightdocs

// IDCodec converts numeric document IDs to and from short quick codes.
type IDCodec interface {
	// Encode returns the quick code for a numeric ID.
	Encode(id int) (string, error)

	// Decode returns the numeric ID behind a quick code.
	// ok is false when s is not a valid quick code.
	Decode(s string) (id int, ok bool)
}
