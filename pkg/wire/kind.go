package wire

// Discriminant is a closed enumeration decoded from a fixed-width code.
type Discriminant interface {
	~uint8 | ~uint16
	Known() bool
}

// DecodeKind reads a u16 kind code. Codes outside K's table fail with
// ErrUnrecognized; there is no fallback variant.
func DecodeKind[K Discriminant](c *Cursor) (K, error) {
	at := c.off
	v, err := c.U16()
	if err != nil {
		return 0, err
	}
	k := K(v)
	if uint16(k) != v || !k.Known() {
		c.off = at
		return 0, Errorf(ErrUnrecognized, at, "component kind", "code %d", v)
	}
	return k, nil
}
