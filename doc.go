// Package bwf renders format strings into caller-owned, fixed-capacity
// buffers.
//
// A format string mixes literal text with {...} specifiers. Rendering never
// allocates against the output: a [FixedWriter] wraps a caller-provided byte
// slice and silently truncates on overflow while tracking the logical length
// via [FixedWriter.Extent], so truncation is detectable after the fact.
//
//	buf := make([]byte, 64)
//	w := bwf.NewFixedWriter(buf)
//	w.Print("{} connections from {}", n, addr)
//
// # Specifier Syntax
//
// A specifier is {locator:format:extension}, every part optional. The
// locator is a positional index ({0}) or a symbolic name ({host}); with
// neither, the next sequential argument is used. The format part follows
// the usual fill/align/sign/width/precision/type grammar:
//
//	{0:>10s}   argument 0, right-aligned in 10 cells
//	{:#x}      next argument, hex with 0x prefix
//	{:08.3f}   zero-filled width 8, 3 fractional digits
//
// {{ and }} are literal braces. Parsing is best effort: malformed pieces
// degrade the specifier instead of failing the render, and every failure
// mode (unknown name, index out of range, overflow) surfaces as in-band
// text or a detectable extent mismatch, never as an error.
//
// # Argument Types
//
// Built-in handling covers strings, byte slices, integers, floats, bools,
// errors, [fmt.Stringer], and netip addresses. A type extends the engine by
// implementing [Formatter]:
//
//	func (v MyType) Format(w *bwf.FixedWriter, spec bwf.Spec) { ... }
//
// Types that cannot grow a method use [RegisterArg]. Anything else falls
// back to reflection-based %v output.
//
// # Named Specifiers
//
// A [Names] registry maps symbolic names to [Generator] functions; [Global]
// backs [FixedWriter.Print] and {name} specifiers resolve through it. A
// [ContextNames] registry carries generators that need a per-render context,
// bound with [ContextNames.Bind]:
//
//	names := bwf.NewContextNames[*Request]()
//	names.Assign("path", func(w *bwf.FixedWriter, spec bwf.Spec, r *Request) {
//		w.WriteString(r.URL.Path)
//	})
//	w.PrintBound(names.Bind(req), "{path} -> {}", status)
//
// [Names.LoadStatic] fills a registry from a YAML mapping of name to literal
// text. An unresolved name renders as {~name~} and the render continues.
//
// # Precompiled Formats
//
// [Compile] parses a format string once into a [Format] for reuse in tight
// loops; output is byte-identical to the direct path. Names resolve at
// compile time against a context-free registry only.
//
// # Concurrency
//
// Rendering is synchronous and touches only the caller's buffer. Registries
// follow populate-then-publish: assign during setup, render concurrently
// afterward; mutating a registry with renders in flight requires external
// synchronization. The argument-type table is published race-free and is
// safe for concurrent first use.
package bwf
