package bwf

import "math"

// Align selects how content is placed within the minimum field width.
type Align uint8

const (
	AlignNone   Align = iota // no alignment, no padding
	AlignLeft                // '<'
	AlignRight               // '>'
	AlignCenter              // '^'
	AlignSign                // '=' sign flush left, digits flush right
)

// Reserved type codes. Any byte outside the recognized set degrades a
// specifier to TypeInvalid during parsing.
const (
	TypeDefault byte = 'g' // generic output for the argument's type
	TypeInvalid byte = 0   // missing or unrecognized type
	TypeLiteral byte = '"' // internal: item is a literal, text in Ext
)

// Spec is the parsed form of one {...} directive. Values are immutable after
// parsing; renderers that need variations copy and adjust.
type Spec struct {
	Fill      byte   // fill character, default ' '
	Sign      byte   // '-', '+' or ' '
	Align     Align  // field alignment
	Type      byte   // type code, TypeDefault if unspecified
	RadixLead bool   // '#': emit 0x/0X/0b/0B/0o before digits
	Min       uint   // minimum field width
	Prec      int    // precision, -1 unset
	Max       uint   // maximum field width
	Idx       int    // positional argument index, -1 unset
	Name      string // symbolic name, empty if none
	Ext       string // free-form extension, renderer-specific
}

// DefaultSpec is used where no format specifier is available, e.g. by
// [FixedWriter.Value].
var DefaultSpec = Spec{
	Fill: ' ',
	Sign: '-',
	Type: TypeDefault,
	Prec: -1,
	Max:  math.MaxUint,
	Idx:  -1,
}

// Syntactic property flags, one byte per character.
const (
	propAlignMask   = 0x0F // low nibble holds the Align value
	propTypeChar    = 0x10 // recognized type code
	propUpperType   = 0x20 // upper-case variant
	propNumericType = 0x40 // integral numeric output
	propSignChar    = 0x80 // sign character
)

var specProps = func() (p [256]uint8) {
	p['<'] = uint8(AlignLeft)
	p['>'] = uint8(AlignRight)
	p['^'] = uint8(AlignCenter)
	p['='] = uint8(AlignSign)
	for _, c := range []byte("-+ ") {
		p[c] |= propSignChar
	}
	for _, c := range []byte("bBdgopPsSxXf") {
		p[c] |= propTypeChar
	}
	for _, c := range []byte("BPSX") {
		p[c] |= propUpperType
	}
	for _, c := range []byte("bBdopPxX") {
		p[c] |= propNumericType
	}
	return p
}()

func alignOf(c byte) Align { return Align(specProps[c] & propAlignMask) }
func isSign(c byte) bool   { return specProps[c]&propSignChar != 0 }
func isType(c byte) bool   { return specProps[c]&propTypeChar != 0 }

// HasValidType reports whether the specifier selects any output at all.
func (s Spec) HasValidType() bool { return s.Type != TypeInvalid }

// HasNumericType reports whether the type code selects integral numeric
// output.
func (s Spec) HasNumericType() bool { return specProps[s.Type]&propNumericType != 0 }

// HasUpperCaseType reports whether the type code is an upper-case variant.
func (s Spec) HasUpperCaseType() bool { return specProps[s.Type]&propUpperType != 0 }

// HasPointerType reports whether the type code requests pointer styling.
func (s Spec) HasPointerType() bool { return s.Type == 'p' || s.Type == 'P' }
