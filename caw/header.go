package caw

// CAWHeader holds the fixed fields at the start of a .caw file.
// The 3-byte magic is followed by one reserved byte and the per-direction
// vertex counts in direction order (+X, +Y, +Z, -X, -Y, -Z, REMAIN).
type CAWHeader struct {
	Counts [DirectionCount]int32
}

const (
	magic = "caw"
	// HeaderSize is 4 bytes of magic/padding plus seven int32 counts.
	HeaderSize = 4 + DirectionCount*4
)

// VertexCount is the sum of all per-direction counts.
func (h CAWHeader) VertexCount() int64 {
	var n int64
	for _, c := range h.Counts {
		n += int64(c)
	}
	return n
}
