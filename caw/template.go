package caw

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Template is a loaded cube template: one vertex sub-list per direction
// stored back to back in direction order. It is immutable after
// construction and safe to share between goroutines.
type Template struct {
	layout VertexLayout
	counts [DirectionCount]int
	starts [DirectionCount]int // first vertex of each sub-list
	data   []byte
}

// NewTemplate builds a template from per-direction counts and the packed
// vertex records. data is copied.
func NewTemplate(layout VertexLayout, counts [DirectionCount]int, data []byte) (*Template, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	t := &Template{layout: layout, counts: counts}
	total := 0
	for d, c := range counts {
		if c < 0 {
			return nil, errors.Wrapf(ErrInvalidFormat, "negative vertex count %d for %s", c, Direction(d))
		}
		t.starts[d] = total
		total += c
	}
	if len(data) != total*layout.Stride {
		return nil, errors.Wrapf(ErrInvalidFormat, "vertex data is %d bytes, want %d", len(data), total*layout.Stride)
	}
	t.data = append([]byte(nil), data...)
	return t, nil
}

func (t *Template) Layout() VertexLayout { return t.layout }

// Count returns the number of vertices in the sub-list for d.
func (t *Template) Count(d Direction) int { return t.counts[d] }

// Counts returns all per-direction counts in direction order.
func (t *Template) Counts() [DirectionCount]int { return t.counts }

// VertexCount is the total number of vertices over all sub-lists.
func (t *Template) VertexCount() int { return len(t.data) / t.layout.Stride }

// SubList returns the packed records for d. The slice aliases the template
// and must not be modified.
func (t *Template) SubList(d Direction) []byte {
	s := t.layout.Stride
	lo := t.starts[d] * s
	return t.data[lo : lo+t.counts[d]*s]
}

// Vertex returns record i of the sub-list for d.
func (t *Template) Vertex(d Direction, i int) []byte {
	s := t.layout.Stride
	lo := (t.starts[d] + i) * s
	return t.data[lo : lo+s]
}

// Header returns the header a writer would emit for this template.
func (t *Template) Header() CAWHeader {
	var h CAWHeader
	for d, c := range t.counts {
		h.Counts[d] = int32(c)
	}
	return h
}

// Fingerprint hashes the counts and vertex data, so two templates with the
// same geometry and attributes share a fingerprint.
func (t *Template) Fingerprint() uint64 {
	d := xxhash.New()
	var b [4]byte
	for _, c := range t.counts {
		binary.LittleEndian.PutUint32(b[:], uint32(c))
		_, _ = d.Write(b[:])
	}
	_, _ = d.Write(t.data)
	return d.Sum64()
}
