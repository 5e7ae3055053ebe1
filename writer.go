package bwf

// FixedWriter appends into a caller-provided byte slice and never grows it.
// Writes past capacity are dropped but still counted, so [FixedWriter.Extent]
// reports the length the output would have had with enough room. Compare
// Extent against Capacity (or call [FixedWriter.Truncated]) to detect
// overflow after the fact; no error is ever reported mid-write.
type FixedWriter struct {
	buf    []byte
	extent int
}

// NewFixedWriter returns a writer over buf. The writer takes no ownership;
// the caller may inspect buf directly after rendering.
func NewFixedWriter(buf []byte) *FixedWriter {
	return &FixedWriter{buf: buf}
}

// Reset discards all content, keeping the buffer.
func (w *FixedWriter) Reset() *FixedWriter {
	w.extent = 0
	return w
}

// Capacity returns the size of the underlying buffer.
func (w *FixedWriter) Capacity() int { return len(w.buf) }

// Extent returns the logical length of everything written, including bytes
// dropped by truncation.
func (w *FixedWriter) Extent() int { return w.extent }

// Size returns the physical content length: min(extent, capacity).
func (w *FixedWriter) Size() int {
	if w.extent > len(w.buf) {
		return len(w.buf)
	}
	return w.extent
}

// Remaining returns the unused capacity.
func (w *FixedWriter) Remaining() int {
	if w.extent >= len(w.buf) {
		return 0
	}
	return len(w.buf) - w.extent
}

// Truncated reports whether any write was dropped.
func (w *FixedWriter) Truncated() bool { return w.extent > len(w.buf) }

// Bytes returns the physical content. The slice aliases the caller's buffer.
func (w *FixedWriter) Bytes() []byte { return w.buf[:w.Size()] }

// String returns the physical content as a string.
func (w *FixedWriter) String() string { return string(w.Bytes()) }

// WriteString appends s, clipped to the remaining capacity.
func (w *FixedWriter) WriteString(s string) *FixedWriter {
	copy(w.buf[w.Size():], s)
	w.extent += len(s)
	return w
}

// WriteBytes appends p, clipped to the remaining capacity.
func (w *FixedWriter) WriteBytes(p []byte) *FixedWriter {
	copy(w.buf[w.Size():], p)
	w.extent += len(p)
	return w
}

// WriteChar appends a single byte.
func (w *FixedWriter) WriteChar(c byte) *FixedWriter {
	if w.extent < len(w.buf) {
		w.buf[w.extent] = c
	}
	w.extent++
	return w
}

// Fill appends n copies of c.
func (w *FixedWriter) Fill(c byte, n int) *FixedWriter {
	for range n {
		w.WriteChar(c)
	}
	return w
}

// Write implements io.Writer. It never fails; overflow is visible only
// through [FixedWriter.Extent].
func (w *FixedWriter) Write(p []byte) (int, error) {
	w.WriteBytes(p)
	return len(p), nil
}

// scratch returns a writer over the unused tail of the buffer, capped at max
// bytes. Content written to it sits physically at the parent's cursor, so
// alignFill can commit it in place without copying out.
func (w *FixedWriter) scratch(max int) FixedWriter {
	tail := w.buf[w.Size():]
	if max >= 0 && max < len(tail) {
		tail = tail[:max]
	}
	return FixedWriter{buf: tail}
}
