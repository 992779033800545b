//go:build js && wasm

// Command netcalc-wasm builds a WebAssembly module exposing netcalc's
// Convert entry point as JS globals.
//
// Build with: GOOS=js GOARCH=wasm go build -o netcalc.wasm ./cmd/netcalc-wasm
package main

import (
	"syscall/js"

	netcalc "github.com/shouya/netcalc"
)

func main() {
	netcalcNS := js.Global().Get("Object").New()
	netcalcNS.Set("convert", js.FuncOf(convert))
	netcalcNS.Set("convertVersioned", js.FuncOf(convertVersioned))
	js.Global().Set("netcalc", netcalcNS)

	// Keep the program alive so the exported functions remain callable;
	// the JS host never calls back into Go's main, only into the funcs
	// registered above.
	select {}
}

// convert is the IPv4-only export: convert(sep, script) -> string. Errors
// collapse to their message text rather than throwing.
func convert(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "netcalc.convert: expected (separator, script)"
	}
	return convertWith("4", args[0].String(), args[1].String())
}

// convertVersioned is the IPv6-capable export:
// convertVersioned(version, sep, script) -> string.
func convertVersioned(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "netcalc.convertVersioned: expected (version, separator, script)"
	}
	return convertWith(args[0].String(), args[1].String(), args[2].String())
}

func convertWith(version, sep, scriptText string) string {
	out, err := netcalc.Convert(version, sep, scriptText)
	if err != nil {
		return err.Error()
	}
	return out
}
