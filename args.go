package bwf

import (
	"fmt"
	"net"
	"net/netip"
	"reflect"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Formatter is the capability interface for argument types. A type that
// implements it renders itself and bypasses all built-in handling, so it is
// the extension point for domain types.
type Formatter interface {
	Format(w *FixedWriter, spec Spec)
}

// ArgFormatter renders one type-erased argument. Registered via
// [RegisterArg] for types that cannot implement [Formatter] directly.
type ArgFormatter func(w *FixedWriter, spec Spec, v any)

// argFormatters maps reflect.Type to ArgFormatter. Written during setup or
// at most once per type, read on every render; sync.Map gives race-free
// publication without locking the render path.
var argFormatters sync.Map

// RegisterArg installs a renderer for values of type T, replacing any prior
// registration. Call it during initialization; it is the external-type
// analogue of implementing [Formatter].
func RegisterArg[T any](fn func(w *FixedWriter, spec Spec, v T)) {
	argFormatters.Store(reflect.TypeFor[T](), ArgFormatter(func(w *FixedWriter, spec Spec, v any) {
		fn(w, spec, v.(T))
	}))
}

// formatArg dispatches one argument to its renderer. The type switch is the
// fast path for builtins; anything else goes through the registration table
// and finally a reflection-based fallback, so rendering never fails on an
// unknown type.
func formatArg(w *FixedWriter, spec Spec, v any) {
	switch x := v.(type) {
	case nil:
		w.WriteString("<nil>")
	case Formatter:
		x.Format(w, spec)
	case string:
		formatString(w, spec, x)
	case []byte:
		formatByteSlice(w, spec, x)
	case bool:
		formatBool(w, spec, x)
	case int:
		formatSigned(w, spec, int64(x))
	case int8:
		formatSigned(w, spec, int64(x))
	case int16:
		formatSigned(w, spec, int64(x))
	case int32:
		formatSigned(w, spec, int64(x))
	case int64:
		formatSigned(w, spec, x)
	case uint:
		formatInteger(w, spec, uint64(x), false)
	case uint8:
		formatInteger(w, spec, uint64(x), false)
	case uint16:
		formatInteger(w, spec, uint64(x), false)
	case uint32:
		formatInteger(w, spec, uint64(x), false)
	case uint64:
		formatInteger(w, spec, x, false)
	case uintptr:
		if spec.Type == TypeDefault {
			spec.Type = 'p'
		}
		formatInteger(w, spec, uint64(x), false)
	case float64:
		if x < 0 {
			formatFloat(w, spec, -x, true)
		} else {
			formatFloat(w, spec, x, false)
		}
	case float32:
		formatArg(w, spec, float64(x))
	case netip.Addr:
		formatAddr(w, spec, x)
	case netip.AddrPort:
		formatAddrPort(w, spec, x)
	case net.IP:
		if a, ok := netip.AddrFromSlice(x); ok {
			formatAddr(w, spec, a)
		} else {
			w.WriteString("*not an IP address*")
		}
	case error:
		formatString(w, spec, x.Error())
	case fmt.Stringer:
		formatString(w, spec, x.String())
	default:
		if fa, ok := argFormatters.Load(reflect.TypeOf(v)); ok {
			fa.(ArgFormatter)(w, spec, v)
			return
		}
		fmt.Fprintf(w, "%v", v)
	}
}

func formatSigned(w *FixedWriter, spec Spec, n int64) {
	if n < 0 {
		formatInteger(w, spec, uint64(-n), true)
	} else {
		formatInteger(w, spec, uint64(n), false)
	}
}

// formatString renders s. Precision clips to a display-cell count, never
// splitting a rune. Type 'x'/'X' hex dumps the bytes; 'S' upper-cases.
func formatString(w *FixedWriter, spec Spec, s string) {
	if spec.Prec >= 0 {
		s = runewidth.Truncate(s, spec.Prec, "")
	}
	switch spec.Type {
	case 'x', 'X':
		hexDump(w, spec, s)
	case 'S':
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			w.WriteChar(c)
		}
	default:
		w.WriteString(s)
	}
}

func formatByteSlice(w *FixedWriter, spec Spec, p []byte) {
	if spec.Prec >= 0 && spec.Prec < len(p) {
		p = p[:spec.Prec]
	}
	switch spec.Type {
	case 'x', 'X':
		hexDump(w, spec, p)
	default:
		w.WriteBytes(p)
	}
}

func formatBool(w *FixedWriter, spec Spec, b bool) {
	switch spec.Type {
	case 's':
		if b {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case 'S':
		if b {
			w.WriteString("TRUE")
		} else {
			w.WriteString("FALSE")
		}
	default:
		n := uint64(0)
		if b {
			n = 1
		}
		formatInteger(w, spec, n, false)
	}
}

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// hexDump writes each byte of s as two hex digits.
func hexDump[T ~string | ~[]byte](w *FixedWriter, spec Spec, s T) {
	digits := lowerHexDigits
	if spec.HasUpperCaseType() {
		digits = upperHexDigits
	}
	if spec.RadixLead {
		if spec.HasUpperCaseType() {
			w.WriteString("0X")
		} else {
			w.WriteString("0x")
		}
	}
	for i := 0; i < len(s); i++ {
		w.WriteChar(digits[s[i]>>4])
		w.WriteChar(digits[s[i]&0xF])
	}
}
