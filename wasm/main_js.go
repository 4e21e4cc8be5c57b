//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/simplestargame/SimpleMeshWorldSample/api"
)

func bytesFromJS(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func bytesToJS(b []byte) js.Value {
	uint8arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(uint8arr, b)
	return uint8arr
}

// world2glb(cawBytes, worldBytes, chunkLevel, alwaysEmit)
func world2glb(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf("missing template or world bytes")
	}
	level := 0
	if len(args) > 2 {
		level = args[2].Int()
	}
	alwaysEmit := ""
	if len(args) > 3 {
		alwaysEmit = args[3].String()
	}
	out, err := api.WorldToGLB(bytesFromJS(args[0]), bytesFromJS(args[1]), level, alwaysEmit)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func cawinfo(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing template bytes")
	}
	info, err := api.TemplateInfo(bytesFromJS(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(info)
}

func gencube(this js.Value, args []js.Value) any {
	inset := 0.0
	if len(args) > 0 {
		inset = args[0].Float()
	}
	out, err := api.CubeTemplate(float32(inset))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return bytesToJS(out)
}

func main() {
	js.Global().Set("world2glb", js.FuncOf(world2glb))
	js.Global().Set("cawinfo", js.FuncOf(cawinfo))
	js.Global().Set("gencube", js.FuncOf(gencube))
	select {}
}
