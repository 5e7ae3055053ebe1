package bwf

import "net/netip"

// IP address rendering. These are consumers of the core protocol: each picks
// apart the specifier's extension for its own flags and renders elements
// through the same scratch-and-align path as any other argument.
//
// Extension syntax, shared by all address renderers:
//
//	=	zero-fill each element (octet, quad, port) to its natural width
//	c=	like '=' with fill character c
//	a	include the address
//	p	include the port (AddrPort only)
//	f	include the family name
//
// Flags a/p/f select components; with no flags the default set renders.

// splitAlignExt extracts the leading '='/'c=' fill marker from an extension.
func splitAlignExt(ext string) (fill byte, ok bool, rest string) {
	if ext == "" {
		return 0, false, ""
	}
	if ext[0] == '=' {
		return '0', true, ext[1:]
	}
	if len(ext) > 1 && ext[1] == '=' {
		return ext[0], true, ext[2:]
	}
	return 0, false, ext
}

// renderIntAligned renders n through a scratch writer and the alignment
// engine so that per-element Min widths apply, mirroring the top-level
// driver's handling of one specifier.
func renderIntAligned(w *FixedWriter, spec Spec, n uint64) {
	width := w.Remaining()
	if spec.Max < uint(width) {
		width = int(spec.Max)
	}
	lw := w.scratch(width)
	formatInteger(&lw, spec, n, false)
	if lw.Extent() > 0 {
		w.alignFill(spec, &lw)
	}
}

// formatIP4 renders dotted-quad notation. The '=' extension right-aligns
// each octet to width 3.
func formatIP4(w *FixedWriter, spec Spec, addr netip.Addr) {
	local := spec
	if fill, ok, _ := splitAlignExt(spec.Ext); ok {
		local.Fill = fill
		local.Min = 3
		local.Align = AlignRight
	} else {
		local.Min = 0
	}
	octets := addr.As4()
	for i, o := range octets {
		if i > 0 {
			w.WriteChar('.')
		}
		renderIntAligned(w, local, uint64(o))
	}
}

// formatIP6 renders eight 16-bit quads. Without an internal fill the longest
// run of two or more zero quads collapses to "::"; a strict greater-than
// comparison picks the run, so the first of equal-length runs wins.
func formatIP6(w *FixedWriter, spec Spec, addr netip.Addr) {
	local := spec
	lower, upper := -1, -1
	a16 := addr.As16()
	var quads [8]uint16
	for i := range quads {
		quads[i] = uint16(a16[2*i])<<8 | uint16(a16[2*i+1])
	}

	if fill, ok, _ := splitAlignExt(spec.Ext); ok {
		local.Fill = fill
		local.Min = 4
		local.Align = AlignRight
	} else {
		local.Min = 0
		// Zero-run compression only without internal fill.
		current := -1
		for i, q := range quads {
			if q != 0 {
				current = -1
				continue
			}
			if current < 0 {
				current = i
			} else if lower < 0 || upper-lower < i-current {
				lower, upper = current, i
			}
		}
	}

	if !local.HasNumericType() {
		local.Type = 'x'
	}

	for i := range quads {
		if lower >= 0 && lower <= i && i <= upper {
			if i == 0 {
				w.WriteChar(':')
			}
			if i == upper {
				w.WriteChar(':')
			}
			continue
		}
		renderIntAligned(w, local, uint64(quads[i]))
		if i != len(quads)-1 {
			w.WriteChar(':')
		}
	}
}

// formatAddr renders a bare address. Extension flags select the address
// and/or family; the default is address only.
func formatAddr(w *FixedWriter, spec Spec, addr netip.Addr) {
	_, _, flags := splitAlignExt(spec.Ext)
	addrP, familyP := true, false
	if flags != "" {
		addrP = false
		for i := 0; i < len(flags); i++ {
			switch flags[i] {
			case 'a', 'A':
				addrP = true
			case 'f', 'F':
				familyP = true
			}
		}
	}
	if addrP {
		writeAddr(w, spec, addr)
	}
	if familyP {
		if addrP {
			w.WriteChar(' ')
		}
		writeFamily(w, spec, addr)
	}
}

// formatAddrPort renders address and port. Extension flags select address,
// port, and/or family; the default is address:port. An IPv6 address is
// bracketed when a port follows.
func formatAddrPort(w *FixedWriter, spec Spec, ap netip.AddrPort) {
	fill, fillOK, flags := splitAlignExt(spec.Ext)
	addrP, portP, familyP := true, true, false
	if flags != "" {
		addrP, portP = false, false
		for i := 0; i < len(flags); i++ {
			switch flags[i] {
			case 'a', 'A':
				addrP = true
			case 'p', 'P':
				portP = true
			case 'f', 'F':
				familyP = true
			}
		}
	}
	addr := ap.Addr()
	if addrP {
		bracket := addr.Is6() && !addr.Is4In6() && portP
		if bracket {
			w.WriteChar('[')
		}
		writeAddr(w, spec, addr)
		if bracket {
			w.WriteChar(']')
		}
		if portP {
			w.WriteChar(':')
		}
	}
	if portP {
		local := spec
		local.Ext = ""
		if fillOK {
			local.Min = 5
			local.Fill = fill
			local.Align = AlignRight
		} else {
			local.Min = 0
		}
		renderIntAligned(w, local, uint64(ap.Port()))
	}
	if familyP {
		if addrP || portP {
			w.WriteChar(' ')
		}
		writeFamily(w, spec, addr)
	}
}

// writeAddr dispatches on address family, passing the original spec through
// so the '=' extension reaches the element renderer.
func writeAddr(w *FixedWriter, spec Spec, addr netip.Addr) {
	switch {
	case addr.Is4() || addr.Is4In6():
		formatIP4(w, spec, addr.Unmap())
	case addr.Is6():
		formatIP6(w, spec, addr)
	default:
		w.WriteString("*not an IP address*")
	}
}

// writeFamily renders the family name, or the IP version under a numeric
// type code.
func writeFamily(w *FixedWriter, spec Spec, addr netip.Addr) {
	local := spec
	local.Min = 0
	version := uint64(0)
	name := "unspec"
	switch {
	case addr.Is4() || addr.Is4In6():
		version, name = 4, "ipv4"
	case addr.Is6():
		version, name = 6, "ipv6"
	}
	if spec.HasNumericType() && version != 0 {
		formatInteger(w, local, version, false)
		return
	}
	local.Type = TypeDefault
	formatString(w, local, name)
}
