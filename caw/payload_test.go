package caw

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func patternedGrid(edge int) *WorldGrid {
	g := NewWorldGrid(edge)
	for i := range g.Voxels {
		if i%5 == 0 || i%7 == 0 {
			g.Voxels[i] = Solid
		}
	}
	return g
}

func TestWorldCodecRoundTrip(t *testing.T) {
	g := patternedGrid(16)
	for _, c := range []Codec{CodecRaw, CodecGzip, CodecZstd, CodecZlib} {
		data, err := EncodeWorld(g, c)
		if err != nil {
			t.Fatalf("%s: EncodeWorld: %v", c, err)
		}
		if c != CodecRaw && DetectCodec(data) != c {
			t.Fatalf("%s: detected as %s", c, DetectCodec(data))
		}
		for _, edge := range []int{16, 0} {
			got, err := DecodeWorld(data, edge)
			if err != nil {
				t.Fatalf("%s edge %d: DecodeWorld: %v", c, edge, err)
			}
			if got.Edge != 16 || !bytes.Equal(got.Voxels, g.Voxels) {
				t.Fatalf("%s edge %d: grid differs after round trip", c, edge)
			}
			if got.Checksum() != g.Checksum() {
				t.Fatalf("%s edge %d: checksum differs", c, edge)
			}
		}
	}
}

func TestDecodeWorldWrongSize(t *testing.T) {
	g := patternedGrid(4)
	data, err := EncodeWorld(g, CodecGzip)
	if err != nil {
		t.Fatalf("EncodeWorld: %v", err)
	}
	if _, err := DecodeWorld(data, 5); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("edge 5 over a 4³ payload: got %v, want ErrInvalidFormat", err)
	}
	if _, err := DecodeWorld(make([]byte, 10), 0); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("non-cube payload: got %v, want ErrInvalidFormat", err)
	}
	corrupt := append([]byte(nil), data[:len(data)/2]...)
	if _, err := DecodeWorld(corrupt, 4); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("truncated gzip: got %v, want ErrInvalidFormat", err)
	}
}

func TestLoadWorldFile(t *testing.T) {
	dir := t.TempDir()
	g := patternedGrid(8)
	path := filepath.Join(dir, "world000.gz")
	if err := SaveWorld(g, path, CodecGzip); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}
	got, err := LoadWorld(path, 8)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if got.SolidCount() != g.SolidCount() {
		t.Fatalf("solid count %d, want %d", got.SolidCount(), g.SolidCount())
	}
	if _, err := LoadWorld(filepath.Join(dir, "missing.gz"), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
