package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

// RunGenerateCube writes a cube template. A positive inset produces the
// bevelled cube whose bevel triangles live in REMAIN.
func RunGenerateCube(outPath string, inset float32) error {
	tmpl, err := caw.InsetCube(caw.DefaultLayout, inset)
	if err != nil {
		return err
	}
	if err := caw.SaveTemplate(tmpl, outPath); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	if fi, err := os.Stat(outPath); err == nil {
		fmt.Printf(".caw saved (%d bytes, %d vertices)\n", fi.Size(), tmpl.VertexCount())
	}
	return nil
}

// DescribeTemplate renders per-direction counts and the fingerprint.
func DescribeTemplate(tmpl *caw.Template) string {
	var sb strings.Builder
	for d := caw.Direction(0); d < caw.DirectionCount; d++ {
		fmt.Fprintf(&sb, "%-6s %d\n", d, tmpl.Count(d))
	}
	fmt.Fprintf(&sb, "total  %d\n", tmpl.VertexCount())
	fmt.Fprintf(&sb, "stride %d\n", tmpl.Layout().Stride)
	fmt.Fprintf(&sb, "xxhash %016x\n", tmpl.Fingerprint())
	return sb.String()
}

// RunCAWInfo prints a template's header summary.
func RunCAWInfo(path string) error {
	tmpl, err := caw.LoadTemplate(path, caw.DefaultLayout)
	if err != nil {
		return err
	}
	fmt.Print(DescribeTemplate(tmpl))
	return nil
}
