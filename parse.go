package bwf

import "strings"

// parseNext pulls the next literal and/or specifier body off *format,
// advancing it. It returns false only when the format is exhausted; an empty
// specifier ("{}") still returns hasSpec true. Doubled braces in literal text
// collapse to a single brace, which may split one literal run across several
// calls.
func parseNext(format *string) (literal, body string, hasSpec, ok bool) {
	s := *format
	if s == "" {
		return "", "", false, false
	}
	i := strings.IndexAny(s, "{}")
	if i < 0 {
		*format = ""
		return s, "", false, true
	}
	switch s[i] {
	case '}':
		// "}}" collapses; a stray '}' passes through as-is.
		if i+1 < len(s) && s[i+1] == '}' {
			*format = s[i+2:]
		} else {
			*format = s[i+1:]
		}
		return s[:i+1], "", false, true
	default: // '{'
		if i+1 < len(s) && s[i+1] == '{' {
			*format = s[i+2:]
			return s[:i+1], "", false, true
		}
		j := strings.IndexByte(s[i+1:], '}')
		if j < 0 {
			// Unterminated specifier: take the remainder as the body.
			*format = ""
			return s[:i], s[i+1:], true, true
		}
		*format = s[i+2+j:]
		return s[:i], s[i+1 : i+1+j], true, true
	}
}

// leadingUint parses a leading run of decimal digits. found is false when s
// does not start with a digit.
func leadingUint(s string) (n uint, rest string, found bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + uint(s[i]-'0')
		i++
	}
	return n, s[i:], i > 0
}

// ParseSpec parses one specifier body, the text between the enclosing
// braces: [locator][:format[:ext]]. Parsing is best effort and never fails;
// malformed pieces leave the corresponding field at its default, and an
// unrecognized type code marks the specifier invalid rather than aborting.
func ParseSpec(body string) Spec {
	spec := DefaultSpec
	locator, rest, hasFormat := strings.Cut(body, ":")
	if locator != "" {
		spec.Name = locator
		if n, left, found := leadingUint(locator); found && left == "" {
			spec.Idx = int(n)
		}
	}
	if hasFormat {
		var ext string
		var hasExt bool
		rest, ext, hasExt = strings.Cut(rest, ":")
		if hasExt {
			spec.Ext = ext
		}
		if left := parseSpecBody(rest, &spec); left != "" && spec.Ext == "" {
			spec.Ext = left
		}
	}
	return spec
}

// parseSpecBody consumes the format portion of a specifier, left to right.
// Returns whatever trailing text it could not interpret.
func parseSpecBody(s string, spec *Spec) string {
	// Alignment, optionally preceded by a fill character.
	if len(s) >= 2 && alignOf(s[1]) != AlignNone {
		spec.Fill = s[0]
		spec.Align = alignOf(s[1])
		s = s[2:]
	} else if len(s) >= 1 && alignOf(s[0]) != AlignNone {
		spec.Align = alignOf(s[0])
		s = s[1:]
	}
	if s == "" {
		return ""
	}
	if isSign(s[0]) {
		spec.Sign = s[0]
		if s = s[1:]; s == "" {
			return ""
		}
	}
	if s[0] == '#' {
		spec.RadixLead = true
		if s = s[1:]; s == "" {
			return ""
		}
	}
	// Leading zero shorthand: zero fill with sign-aware alignment.
	if s[0] == '0' {
		if spec.Align == AlignNone {
			spec.Align = AlignSign
		}
		spec.Fill = '0'
		if s = s[1:]; s == "" {
			return ""
		}
	}
	if n, rest, found := leadingUint(s); found {
		spec.Min = n
		if s = rest; s == "" {
			return ""
		}
	}
	if s[0] == '.' {
		if n, rest, found := leadingUint(s[1:]); found {
			spec.Prec = int(n)
			if s = rest; s == "" {
				return ""
			}
		} else {
			// Dangling precision dot: drop it, keep going.
			if s = s[1:]; s == "" {
				return ""
			}
		}
	}
	if isType(s[0]) {
		spec.Type = s[0]
		if s = s[1:]; s == "" {
			return ""
		}
	} else {
		spec.Type = TypeInvalid
		return s
	}
	// Maximum width.
	if s[0] == '.' {
		if n, rest, found := leadingUint(s[1:]); found {
			spec.Max = n
			s = rest
		}
	}
	return s
}
