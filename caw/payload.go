package caw

import (
	"bytes"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Codec identifies how a world payload is compressed on disk.
type Codec uint8

const (
	CodecRaw Codec = iota
	CodecGzip
	CodecZstd
	CodecZlib
)

func (c Codec) String() string {
	switch c {
	case CodecRaw:
		return "raw"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	case CodecZlib:
		return "zlib"
	}
	return "unknown"
}

// DetectCodec sniffs the compression of a world payload by its magic bytes.
func DetectCodec(b []byte) Codec {
	switch {
	case len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b:
		return CodecGzip
	case len(b) >= 4 && b[0] == 0x28 && b[1] == 0xb5 && b[2] == 0x2f && b[3] == 0xfd:
		return CodecZstd
	case len(b) >= 2 && b[0]&0x0f == 8 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0:
		return CodecZlib
	}
	return CodecRaw
}

// EncodeWorld serialises the grid's occupancy with the given codec.
func EncodeWorld(g *WorldGrid, c Codec) ([]byte, error) {
	switch c {
	case CodecRaw:
		return append([]byte(nil), g.Voxels...), nil
	case CodecGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(g.Voxels); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(g.Voxels, nil), nil
	case CodecZlib:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(g.Voxels); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.Wrapf(ErrConfiguration, "unsupported codec %d", c)
}

// DecodeWorld decompresses a world payload and wraps it as a grid. With
// edge 0 the edge is inferred from the decompressed length, which must then
// be a perfect cube. A payload of exactly edge³ bytes is taken as raw.
func DecodeWorld(data []byte, edge int) (*WorldGrid, error) {
	raw := data
	if edge <= 0 || len(data) != edge*edge*edge {
		var err error
		raw, err = decompress(data)
		if err != nil {
			return nil, err
		}
	}
	if edge <= 0 {
		edge = int(math.Round(math.Cbrt(float64(len(raw)))))
		if edge == 0 || edge*edge*edge != len(raw) {
			return nil, errors.Wrapf(ErrInvalidFormat, "world payload of %d bytes is not a cube", len(raw))
		}
	}
	return WrapWorldGrid(edge, raw)
}

func decompress(data []byte) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch DetectCodec(data) {
	case CodecRaw:
		return data, nil
	case CodecGzip:
		var zr *gzip.Reader
		if zr, err = gzip.NewReader(bytes.NewReader(data)); err == nil {
			out, err = io.ReadAll(zr)
			zr.Close()
		}
	case CodecZstd:
		var dec *zstd.Decoder
		if dec, err = zstd.NewReader(nil); err == nil {
			out, err = dec.DecodeAll(data, nil)
			dec.Close()
		}
	case CodecZlib:
		var zr io.ReadCloser
		if zr, err = zlib.NewReader(bytes.NewReader(data)); err == nil {
			out, err = io.ReadAll(zr)
			zr.Close()
		}
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "world payload: %v", err)
	}
	return out, nil
}

// LoadWorld reads and decodes a world file. See DecodeWorld for edge.
func LoadWorld(filename string, edge int) (*WorldGrid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "world %s", filename)
		}
		return nil, errors.Wrapf(err, "read world %s", filename)
	}
	g, err := DecodeWorld(data, edge)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}
	return g, nil
}

func SaveWorld(g *WorldGrid, filename string, c Codec) error {
	data, err := EncodeWorld(g, c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
