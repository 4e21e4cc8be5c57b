package caw

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// LoadTemplate reads a .caw file. A missing file yields ErrNotFound, bad
// magic or a size that disagrees with the header yields ErrInvalidFormat.
func LoadTemplate(filename string, layout VertexLayout) (*Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "template %s", filename)
		}
		return nil, errors.Wrapf(err, "read template %s", filename)
	}
	t, err := ParseTemplate(data, layout)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}
	return t, nil
}

// ParseTemplate decodes a .caw file held in memory. The vertex count comes
// from the header's seven counts; the file must be exactly header plus that
// many records.
func ParseTemplate(data []byte, layout VertexLayout) (*Template, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if len(data) < HeaderSize {
		return nil, errors.Wrapf(ErrInvalidFormat, "file is %d bytes, shorter than the %d byte header", len(data), HeaderSize)
	}
	if string(data[:3]) != magic {
		return nil, errors.Wrapf(ErrInvalidFormat, "bad magic %q", data[:3])
	}
	var hdr CAWHeader
	if err := binary.Read(bytes.NewReader(data[4:HeaderSize]), binary.LittleEndian, &hdr.Counts); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "header: %v", err)
	}
	for d, c := range hdr.Counts {
		if c < 0 {
			return nil, errors.Wrapf(ErrInvalidFormat, "negative vertex count %d for %s", c, Direction(d))
		}
	}
	want := int64(HeaderSize) + hdr.VertexCount()*int64(layout.Stride)
	if int64(len(data)) != want {
		return nil, errors.Wrapf(ErrInvalidFormat, "file is %d bytes, header declares %d vertices (%d bytes)",
			len(data), hdr.VertexCount(), want)
	}
	var counts [DirectionCount]int
	for d, c := range hdr.Counts {
		counts[d] = int(c)
	}
	return NewTemplate(layout, counts, data[HeaderSize:])
}

// EncodeTemplate returns t as .caw file bytes.
func EncodeTemplate(t *Template) []byte {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(t.data))
	buf.WriteString(magic)
	buf.WriteByte(0)
	hdr := t.Header()
	_ = binary.Write(&buf, binary.LittleEndian, hdr.Counts)
	buf.Write(t.data)
	return buf.Bytes()
}

func SaveTemplate(t *Template, filename string) error {
	return os.WriteFile(filename, EncodeTemplate(t), 0o644)
}
