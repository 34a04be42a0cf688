// builtin_file.go — file builtins: direct pass-throughs to the host
// filesystem, no buffering or caching in the core.
package hixa

import "os"

func registerFileBuiltins(ip *Interpreter) {
	// read_file(path) — the whole file as a string.
	ip.RegisterNative("read_file", 1, 1, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		path, err := ctx.str(0, "read_file")
		if err != nil {
			return Null, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Null, ctx.errf(ErrGeneric, "read_file(): %v", err)
		}
		return Str(string(data)), nil
	})

	// write_file(path, content) — create or truncate.
	ip.RegisterNative("write_file", 2, 2, func(_ *Interpreter, ctx *NativeCtx) (Value, error) {
		path, err := ctx.str(0, "write_file")
		if err != nil {
			return Null, err
		}
		content, err := ctx.str(1, "write_file")
		if err != nil {
			return Null, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return Null, ctx.errf(ErrGeneric, "write_file(): %v", err)
		}
		return Null, nil
	})
}
