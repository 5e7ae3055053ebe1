package bwf

import "strconv"

// Print renders format with args into the writer, resolving named
// specifiers against [Global]. It returns the writer for chaining; overflow
// is tracked via [FixedWriter.Extent], never reported as an error.
func (w *FixedWriter) Print(format string, args ...any) *FixedWriter {
	return w.PrintBound(Global, format, args...)
}

// PrintBound renders format with args, resolving named specifiers through
// names (typically the result of [Names.Bind] or [ContextNames.Bind]).
//
// Per (literal, specifier) pair: the literal is written verbatim; a
// specifier without a valid type is absorbed silently; otherwise the
// argument is rendered into a scratch region capped at the specifier's
// maximum width and committed through the alignment engine. An explicit
// index out of range renders an in-band diagnostic instead of failing.
func (w *FixedWriter) PrintBound(names BoundNames, format string, args ...any) *FixedWriter {
	argIdx := 0
	for {
		literal, body, hasSpec, ok := parseNext(&format)
		if !ok {
			break
		}
		if literal != "" {
			w.WriteString(literal)
		}
		if !hasSpec {
			continue
		}
		spec := ParseSpec(body)
		if !spec.HasValidType() {
			continue
		}
		width := w.Remaining()
		if spec.Max < uint(width) {
			width = int(spec.Max)
		}
		lw := w.scratch(width)

		if spec.Name == "" {
			spec.Idx = argIdx
		}
		if spec.Idx >= 0 {
			if spec.Idx < len(args) {
				formatArg(&lw, spec, args[spec.Idx])
			} else {
				errBadArgIndex(&lw, spec.Idx, len(args))
			}
			argIdx++
		} else if names != nil {
			names.Generate(&lw, spec)
		}
		if lw.Extent() > 0 {
			w.alignFill(spec, &lw)
		}
	}
	return w
}

// Value renders one value with [DefaultSpec], the stream-insertion
// convenience: w.Value(a).Value(b) appends both without formatting.
func (w *FixedWriter) Value(v any) *FixedWriter {
	formatArg(w, DefaultSpec, v)
	return w
}

// errBadArgIndex writes the in-band diagnostic for a positional reference
// past the end of the argument list.
func errBadArgIndex(w *FixedWriter, idx, count int) {
	var tmp [20]byte
	w.WriteString("*invalid arg index: ")
	w.WriteBytes(strconv.AppendInt(tmp[:0], int64(idx), 10))
	w.WriteString(" of ")
	w.WriteBytes(strconv.AppendInt(tmp[:0], int64(count), 10))
	w.WriteString("*")
}

// sprintSeed is the headroom added to the format length for Sprint's first
// attempt.
const sprintSeed = 32

// Sprint renders into a new string, retrying once at the exact size if the
// first pass truncated.
func Sprint(format string, args ...any) string {
	buf := make([]byte, len(format)+sprintSeed)
	w := NewFixedWriter(buf)
	w.Print(format, args...)
	if w.Truncated() {
		buf = make([]byte, w.Extent())
		w = NewFixedWriter(buf)
		w.Print(format, args...)
	}
	return string(w.Bytes())
}
