package bwf

// alignFill commits the scratch writer's content into w, padding it out to
// the specifier's minimum width. The scratch content already sits physically
// at w's cursor (see FixedWriter.scratch), so padding is done by shifting in
// place; every physical move is clipped at w's capacity while the logical
// extent advances by the full padded length.
func (w *FixedWriter) alignFill(spec Spec, lw *FixedWriter) {
	size := lw.Extent()
	if lw.Capacity() < w.Remaining() && size > lw.Capacity() {
		// The scratch was capped by the specifier's max width, not by the
		// destination: the overshoot was clipped deliberately and must not
		// count toward the logical extent.
		size = lw.Capacity()
	}
	delta := int(spec.Min) - size
	if delta <= 0 || spec.Align == AlignNone {
		w.extent += size
		return
	}
	base := w.Size()
	phys := lw.Size()

	switch spec.Align {
	case AlignLeft:
		w.fillAt(base+phys, delta, spec.Fill)
		w.extent += size + delta
		return
	case AlignRight:
		w.shiftRight(base, phys, delta)
		w.fillAt(base, delta, spec.Fill)
	case AlignCenter:
		// Extra pad character goes on the right when the deficit is odd.
		left := delta / 2
		w.shiftRight(base, phys, left)
		w.fillAt(base, left, spec.Fill)
		w.fillAt(base+left+phys, delta-left, spec.Fill)
	case AlignSign:
		if phys > 0 && isSign(w.buf[base]) {
			w.shiftRight(base+1, phys-1, delta)
			w.fillAt(base+1, delta, spec.Fill)
		} else {
			w.shiftRight(base, phys, delta)
			w.fillAt(base, delta, spec.Fill)
		}
	}
	w.extent += int(spec.Min)
}

// shiftRight moves w.buf[pos:pos+n] up by delta bytes, dropping anything
// that lands past capacity.
func (w *FixedWriter) shiftRight(pos, n, delta int) {
	for i := n - 1; i >= 0; i-- {
		if dst := pos + delta + i; dst < len(w.buf) {
			w.buf[dst] = w.buf[pos+i]
		}
	}
}

// fillAt writes n fill bytes starting at pos, clipped at capacity.
func (w *FixedWriter) fillAt(pos, n int, fill byte) {
	end := min(pos+n, len(w.buf))
	for i := pos; i < end; i++ {
		w.buf[i] = fill
	}
}
