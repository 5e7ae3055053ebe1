package bwf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNext(t *testing.T) {
	next := func(s *string) (string, string, bool) {
		lit, body, hasSpec, ok := parseNext(s)
		if !ok {
			t.Fatal("unexpected end of format")
		}
		return lit, body, hasSpec
	}

	t.Run("literal and specifier", func(t *testing.T) {
		s := "a{0}b"
		lit, body, hasSpec := next(&s)
		assert.Equal(t, "a", lit)
		assert.Equal(t, "0", body)
		assert.True(t, hasSpec)
		lit, _, hasSpec = next(&s)
		assert.Equal(t, "b", lit)
		assert.False(t, hasSpec)
		_, _, _, ok := parseNext(&s)
		assert.False(t, ok)
	})
	t.Run("doubled brace splits the literal", func(t *testing.T) {
		s := "a{{b"
		lit, _, hasSpec := next(&s)
		assert.Equal(t, "a{", lit)
		assert.False(t, hasSpec)
		lit, _, _ = next(&s)
		assert.Equal(t, "b", lit)
	})
	t.Run("empty specifier still reports a specifier", func(t *testing.T) {
		s := "{}"
		lit, body, hasSpec := next(&s)
		assert.Empty(t, lit)
		assert.Empty(t, body)
		assert.True(t, hasSpec)
	})
	t.Run("unterminated specifier takes the remainder", func(t *testing.T) {
		s := "x{yz"
		lit, body, hasSpec := next(&s)
		assert.Equal(t, "x", lit)
		assert.Equal(t, "yz", body)
		assert.True(t, hasSpec)
		assert.Empty(t, s)
	})
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Spec
	}{
		{
			name: "empty body is the default",
			body: "",
			want: DefaultSpec,
		},
		{
			name: "numeric locator",
			body: "0",
			want: withSpec(func(s *Spec) { s.Idx = 0; s.Name = "0" }),
		},
		{
			name: "symbolic locator",
			body: "host",
			want: withSpec(func(s *Spec) { s.Name = "host" }),
		},
		{
			name: "digits with a suffix are a name",
			body: "0abc",
			want: withSpec(func(s *Spec) { s.Name = "0abc" }),
		},
		{
			name: "fill align width precision type",
			body: ":*^10.2f",
			want: withSpec(func(s *Spec) {
				s.Fill = '*'
				s.Align = AlignCenter
				s.Min = 10
				s.Prec = 2
				s.Type = 'f'
			}),
		},
		{
			name: "locator format extension",
			body: "0:>5x:=",
			want: withSpec(func(s *Spec) {
				s.Idx = 0
				s.Name = "0"
				s.Align = AlignRight
				s.Min = 5
				s.Type = 'x'
				s.Ext = "="
			}),
		},
		{
			name: "max width after type",
			body: ":d.3",
			want: withSpec(func(s *Spec) { s.Type = 'd'; s.Max = 3 }),
		},
		{
			name: "radix flag with zero shorthand",
			body: ":#08x",
			want: withSpec(func(s *Spec) {
				s.RadixLead = true
				s.Fill = '0'
				s.Align = AlignSign
				s.Min = 8
				s.Type = 'x'
			}),
		},
		{
			name: "unknown type degrades to invalid",
			body: ":Z",
			want: withSpec(func(s *Spec) { s.Type = TypeInvalid; s.Ext = "Z" }),
		},
		{
			name: "sign only",
			body: ":+d",
			want: withSpec(func(s *Spec) { s.Sign = '+'; s.Type = 'd' }),
		},
		{
			name: "precision without type",
			body: ":.3",
			want: withSpec(func(s *Spec) { s.Prec = 3 }),
		},
		{
			name: "extension keeps colons verbatim",
			body: "t:d:a=b:c",
			want: withSpec(func(s *Spec) { s.Name = "t"; s.Type = 'd'; s.Ext = "a=b:c" }),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpec(tt.body))
		})
	}
}

func withSpec(mod func(*Spec)) Spec {
	s := DefaultSpec
	mod(&s)
	return s
}

func TestSpecClassifiers(t *testing.T) {
	assert.True(t, DefaultSpec.HasValidType())
	assert.False(t, Spec{}.HasValidType())

	hex := withSpec(func(s *Spec) { s.Type = 'X' })
	assert.True(t, hex.HasNumericType())
	assert.True(t, hex.HasUpperCaseType())
	assert.False(t, hex.HasPointerType())

	ptr := withSpec(func(s *Spec) { s.Type = 'p' })
	assert.True(t, ptr.HasPointerType())
	assert.True(t, ptr.HasNumericType())

	str := withSpec(func(s *Spec) { s.Type = 's' })
	assert.False(t, str.HasNumericType())
	assert.False(t, DefaultSpec.HasNumericType())
}

func TestLeadingUint(t *testing.T) {
	n, rest, found := leadingUint("123abc")
	assert.True(t, found)
	assert.Equal(t, uint(123), n)
	assert.Equal(t, "abc", rest)

	_, _, found = leadingUint("abc")
	assert.False(t, found)

	n, rest, found = leadingUint("7")
	assert.True(t, found)
	assert.Equal(t, uint(7), n)
	assert.Empty(t, rest)
}

func TestAlignFill(t *testing.T) {
	render := func(content string, mod func(*Spec), capacity int) *FixedWriter {
		w := NewFixedWriter(make([]byte, capacity))
		spec := withSpec(mod)
		lw := w.scratch(int(min(uint(w.Remaining()), spec.Max)))
		lw.WriteString(content)
		w.alignFill(spec, &lw)
		return w
	}

	t.Run("left", func(t *testing.T) {
		w := render("ab", func(s *Spec) { s.Align = AlignLeft; s.Min = 5; s.Fill = '.' }, 16)
		assert.Equal(t, "ab...", w.String())
	})
	t.Run("right", func(t *testing.T) {
		w := render("ab", func(s *Spec) { s.Align = AlignRight; s.Min = 5; s.Fill = '.' }, 16)
		assert.Equal(t, "...ab", w.String())
	})
	t.Run("center puts the odd pad right", func(t *testing.T) {
		w := render("ab", func(s *Spec) { s.Align = AlignCenter; s.Min = 5 }, 16)
		assert.Equal(t, " ab  ", w.String())
	})
	t.Run("sign aware splits after the sign", func(t *testing.T) {
		w := render("-5", func(s *Spec) { s.Align = AlignSign; s.Min = 4; s.Fill = '0' }, 16)
		assert.Equal(t, "-005", w.String())
	})
	t.Run("sign aware without a sign behaves like right", func(t *testing.T) {
		w := render("42", func(s *Spec) { s.Align = AlignSign; s.Min = 4; s.Fill = '0' }, 16)
		assert.Equal(t, "0042", w.String())
	})
	t.Run("no alignment never pads", func(t *testing.T) {
		w := render("ab", func(s *Spec) { s.Min = 5 }, 16)
		assert.Equal(t, "ab", w.String())
	})
	t.Run("content at width is untouched", func(t *testing.T) {
		w := render("abcde", func(s *Spec) { s.Align = AlignRight; s.Min = 5 }, 16)
		assert.Equal(t, "abcde", w.String())
	})
	t.Run("padding clips at capacity but extends the extent", func(t *testing.T) {
		w := render("ab", func(s *Spec) { s.Align = AlignRight; s.Min = 6 }, 4)
		assert.Equal(t, "    ", w.String())
		assert.Equal(t, 6, w.Extent())
		assert.True(t, w.Truncated())
	})
	t.Run("max width clips without inflating the extent", func(t *testing.T) {
		w := render("abcdef", func(s *Spec) { s.Max = 3 }, 16)
		assert.Equal(t, "abc", w.String())
		assert.Equal(t, 3, w.Extent())
	})
}

func TestSplitAlignExt(t *testing.T) {
	fill, ok, rest := splitAlignExt("=ap")
	assert.True(t, ok)
	assert.Equal(t, byte('0'), fill)
	assert.Equal(t, "ap", rest)

	fill, ok, rest = splitAlignExt("x=f")
	assert.True(t, ok)
	assert.Equal(t, byte('x'), fill)
	assert.Equal(t, "f", rest)

	_, ok, rest = splitAlignExt("apf")
	assert.False(t, ok)
	assert.Equal(t, "apf", rest)

	_, ok, _ = splitAlignExt("")
	assert.False(t, ok)
}

func TestDefaultSpecShape(t *testing.T) {
	assert.Equal(t, byte(' '), DefaultSpec.Fill)
	assert.Equal(t, byte('-'), DefaultSpec.Sign)
	assert.Equal(t, AlignNone, DefaultSpec.Align)
	assert.Equal(t, TypeDefault, DefaultSpec.Type)
	assert.Equal(t, -1, DefaultSpec.Prec)
	assert.Equal(t, -1, DefaultSpec.Idx)
	assert.Equal(t, uint(math.MaxUint), DefaultSpec.Max)
}
