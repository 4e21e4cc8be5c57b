package caw

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// positionSize is three little-endian half floats at the start of every record.
const positionSize = 6

// VertexLayout describes the fixed-size vertex record stored in a template
// and copied into chunk buffers. Only the position is interpreted by the
// mesher; everything else is opaque payload. Offsets of -1 mark an absent
// attribute.
type VertexLayout struct {
	Stride       int
	NormalOffset int // three half floats
	UVOffset     int // two half floats
}

// DefaultLayout is position half4 (w reserved), normal half4 (w reserved)
// and uv half2: 20 bytes per vertex.
var DefaultLayout = VertexLayout{Stride: 20, NormalOffset: 8, UVOffset: 16}

// PositionOnlyLayout carries nothing but a padded half4 position.
var PositionOnlyLayout = VertexLayout{Stride: 8, NormalOffset: -1, UVOffset: -1}

func (l VertexLayout) validate() error {
	if l.Stride < positionSize {
		return errors.Wrapf(ErrConfiguration, "vertex stride %d smaller than position", l.Stride)
	}
	if l.NormalOffset >= 0 && (l.NormalOffset < positionSize || l.NormalOffset+6 > l.Stride) {
		return errors.Wrapf(ErrConfiguration, "normal offset %d outside record", l.NormalOffset)
	}
	if l.UVOffset >= 0 && (l.UVOffset < positionSize || l.UVOffset+4 > l.Stride) {
		return errors.Wrapf(ErrConfiguration, "uv offset %d outside record", l.UVOffset)
	}
	return nil
}

func readHalf(b []byte) float32 {
	return float16.Frombits(binary.LittleEndian.Uint16(b)).Float32()
}

func writeHalf(b []byte, v float32) {
	binary.LittleEndian.PutUint16(b, float16.Fromfloat32(v).Bits())
}

// Position decodes the record's position.
func (l VertexLayout) Position(rec []byte) [3]float32 {
	return [3]float32{readHalf(rec[0:]), readHalf(rec[2:]), readHalf(rec[4:])}
}

// SetPosition encodes p into the record's position, rounding once to half.
func (l VertexLayout) SetPosition(rec []byte, p [3]float32) {
	writeHalf(rec[0:], p[0])
	writeHalf(rec[2:], p[1])
	writeHalf(rec[4:], p[2])
}

func (l VertexLayout) Normal(rec []byte) ([3]float32, bool) {
	if l.NormalOffset < 0 {
		return [3]float32{}, false
	}
	o := l.NormalOffset
	return [3]float32{readHalf(rec[o:]), readHalf(rec[o+2:]), readHalf(rec[o+4:])}, true
}

func (l VertexLayout) SetNormal(rec []byte, n [3]float32) {
	if l.NormalOffset < 0 {
		return
	}
	o := l.NormalOffset
	writeHalf(rec[o:], n[0])
	writeHalf(rec[o+2:], n[1])
	writeHalf(rec[o+4:], n[2])
}

func (l VertexLayout) UV(rec []byte) ([2]float32, bool) {
	if l.UVOffset < 0 {
		return [2]float32{}, false
	}
	o := l.UVOffset
	return [2]float32{readHalf(rec[o:]), readHalf(rec[o+2:])}, true
}

func (l VertexLayout) SetUV(rec []byte, uv [2]float32) {
	if l.UVOffset < 0 {
		return
	}
	o := l.UVOffset
	writeHalf(rec[o:], uv[0])
	writeHalf(rec[o+2:], uv[1])
}
