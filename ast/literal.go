package ast

import (
	"math"
	"strconv"
	"strings"
)

// String renders the literal the way JavaScript's String() would.
func (l *Literal) String() string {
	switch l.LitKind {
	case LiteralNull:
		return "null"
	case LiteralBoolean:
		if b, ok := l.Value.(bool); ok && b {
			return "true"
		}
		return "false"
	case LiteralNumber:
		if f, ok := l.Value.(float64); ok {
			return FormatNumber(f)
		}
		return l.Raw
	case LiteralString:
		if s, ok := l.Value.(string); ok {
			return s
		}
		return l.Raw
	case LiteralBigInt:
		return strings.TrimSuffix(l.Raw, "n")
	default:
		return l.Raw
	}
}

// FormatNumber formats f following JavaScript's Number.prototype.toString.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
