package ephemeris

// MarshalJSON encodes the body as its catalog key.
func (b Body) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.Key() + `"`), nil
}
