package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquote strips the quotes of a string literal and resolves its escapes.
func unquote(raw string) string {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	return unescape(raw)
}

// unescape resolves JavaScript escape sequences. Malformed sequences are kept
// verbatim.
//
//nolint:gocyclo,cyclop // Escape table
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' || i+1 >= len(s) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch esc := s[i]; esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			b.WriteString(`\x`)
		case 'u':
			r, width := decodeUnicodeEscape(s[i+1:])
			if width == 0 {
				b.WriteString(`\u`)
				continue
			}
			b.WriteRune(r)
			i += width
		default:
			b.WriteByte(esc)
		}
	}
	return b.String()
}

// decodeUnicodeEscape decodes the part of a \u escape after the u and returns
// the rune and the number of bytes consumed, or zero width when malformed.
func decodeUnicodeEscape(s string) (rune, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return rune(v), end + 1
	}
	if len(s) < 4 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0
	}
	return rune(v), 4
}

func isBigInt(raw string) bool {
	return strings.HasSuffix(raw, "n")
}

// parseNumber evaluates a numeric literal. Unparseable input yields NaN.
func parseNumber(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	lower := strings.ToLower(s)

	base := 0
	switch {
	case strings.HasPrefix(lower, "0x"):
		base = 16
	case strings.HasPrefix(lower, "0o"):
		base = 8
	case strings.HasPrefix(lower, "0b"):
		base = 2
	case len(s) > 1 && s[0] == '0' && isDigits(s[1:]) && !strings.ContainsAny(s, "89"):
		// legacy octal
		if v, err := strconv.ParseUint(s[1:], 8, 64); err == nil {
			return float64(v)
		}
	}
	if base != 0 {
		v, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(v)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
