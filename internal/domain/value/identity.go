package value

// Identity is an opaque account address supplied by the environment.
// It is only ever compared for equality and used as a map key.
type Identity string

func (i Identity) String() string {
	return string(i)
}

func (i Identity) IsZero() bool {
	return i == ""
}
