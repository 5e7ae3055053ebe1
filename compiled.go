package bwf

// Item is one element of a precompiled [Format]: either a literal fragment
// (literal type code, text in Ext) or a parsed specifier, optionally with a
// pre-resolved generator.
type Item struct {
	Spec Spec
	gen  Generator
}

// Format is a precompiled format string: parsing is done once and reused
// across renders. Named specifiers are resolved against a context-free
// registry at compile time; names needing a run-time context cannot be
// precompiled and should use [FixedWriter.PrintBound] instead. The gain over
// per-call parsing is modest (around 30%), so this is an optimization for
// tight loops, not a requirement.
type Format struct {
	items []Item
}

// Compile parses format once, resolving names against [Global].
func Compile(format string) *Format {
	return CompileNames(Global, format)
}

// CompileNames parses format once, resolving names against the given
// registry. A nil registry leaves all names unresolved; they render as
// {~name~}.
func CompileNames(names *Names, format string) *Format {
	f := &Format{}
	argIdx := 0
	for {
		literal, body, hasSpec, ok := parseNext(&format)
		if !ok {
			break
		}
		if literal != "" {
			lit := DefaultSpec
			lit.Type = TypeLiteral
			lit.Ext = literal
			f.items = append(f.items, Item{Spec: lit})
		}
		if !hasSpec {
			continue
		}
		spec := ParseSpec(body)
		if !spec.HasValidType() {
			continue
		}
		item := Item{Spec: spec}
		if spec.Name == "" {
			item.Spec.Idx = argIdx
		}
		if item.Spec.Idx >= 0 {
			argIdx++
		} else if names != nil {
			if g, ok := names.lookup(spec.Name); ok {
				item.gen = g
			}
		}
		f.items = append(f.items, item)
	}
	return f
}

// PrintFormat renders a precompiled format. Output is byte-identical to
// rendering the original string through [FixedWriter.Print] against the same
// registry.
func (w *FixedWriter) PrintFormat(f *Format, args ...any) *FixedWriter {
	for i := range f.items {
		item := &f.items[i]
		if item.Spec.Type == TypeLiteral {
			w.WriteString(item.Spec.Ext)
			continue
		}
		width := w.Remaining()
		if item.Spec.Max < uint(width) {
			width = int(item.Spec.Max)
		}
		lw := w.scratch(width)
		switch {
		case item.gen != nil:
			item.gen(&lw, item.Spec)
		case item.Spec.Idx >= 0:
			if item.Spec.Idx < len(args) {
				formatArg(&lw, item.Spec, args[item.Spec.Idx])
			} else {
				errBadArgIndex(&lw, item.Spec.Idx, len(args))
			}
		case item.Spec.Name != "":
			missingName(&lw, item.Spec.Name)
		}
		if lw.Extent() > 0 {
			w.alignFill(item.Spec, &lw)
		}
	}
	return w
}

// Sprint renders the precompiled format into a new string, retrying once at
// the exact size on truncation.
func (f *Format) Sprint(args ...any) string {
	buf := make([]byte, sprintSeed)
	w := NewFixedWriter(buf)
	w.PrintFormat(f, args...)
	if w.Truncated() {
		buf = make([]byte, w.Extent())
		w = NewFixedWriter(buf)
		w.PrintFormat(f, args...)
	}
	return string(w.Bytes())
}
