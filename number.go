package bwf

import "strconv"

// radixOf maps a type code to its radix. Pointer types render as hex.
func radixOf(t byte) int {
	switch t {
	case 'x', 'X', 'p', 'P':
		return 16
	case 'o':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 10
	}
}

// formatInteger renders n per the specifier: radix and case from the type
// code, a sign chosen by the sign style, optional radix marker, and integer
// precision as a minimum digit count (zero padded). Field-width padding is
// not applied here; that is the alignment engine's job.
func formatInteger(w *FixedWriter, spec Spec, n uint64, negative bool) *FixedWriter {
	if spec.HasPointerType() {
		spec.RadixLead = true
	}
	base := radixOf(spec.Type)

	var sign byte
	switch {
	case negative:
		sign = '-'
	case spec.Sign == '+':
		sign = '+'
	case spec.Sign == ' ':
		sign = ' '
	}

	var tmp [64 + 8]byte
	digits := strconv.AppendUint(tmp[:0], n, base)
	if spec.HasUpperCaseType() {
		for i, c := range digits {
			if c >= 'a' && c <= 'f' {
				digits[i] = c - ('a' - 'A')
			}
		}
	}

	if sign != 0 {
		w.WriteChar(sign)
	}
	if spec.RadixLead {
		switch base {
		case 16:
			if spec.HasUpperCaseType() {
				w.WriteString("0X")
			} else {
				w.WriteString("0x")
			}
		case 8:
			w.WriteString("0o")
		case 2:
			if spec.HasUpperCaseType() {
				w.WriteString("0B")
			} else {
				w.WriteString("0b")
			}
		}
	}
	for i := len(digits); i < spec.Prec; i++ {
		w.WriteChar('0')
	}
	return w.WriteBytes(digits)
}

// defaultFloatPrec is the fractional digit count when no precision is given.
const defaultFloatPrec = 2

// formatFloat renders the non-negative magnitude f with a sign chosen as for
// integers and Prec fractional digits.
func formatFloat(w *FixedWriter, spec Spec, f float64, negative bool) *FixedWriter {
	prec := spec.Prec
	if prec < 0 {
		prec = defaultFloatPrec
	}
	var sign byte
	switch {
	case negative:
		sign = '-'
	case spec.Sign == '+':
		sign = '+'
	case spec.Sign == ' ':
		sign = ' '
	}
	if sign != 0 {
		w.WriteChar(sign)
	}
	var tmp [32]byte
	return w.WriteBytes(strconv.AppendFloat(tmp[:0], f, 'f', prec, 64))
}
