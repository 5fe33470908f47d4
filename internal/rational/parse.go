package rational

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrParse is matched by every *ParseError
var ErrParse = errors.New("invalid number")

// ParseError reports text that is not a decimal, integer or fraction literal
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid number %q", e.Text)
	}
	return fmt.Sprintf("invalid number %q: %s", e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrParse) hold for any *ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Parse reads a signed integer ("12", "-3"), decimal ("2.5", "1.5e2") or
// fraction ("7/2", "1.5/4") literal. Surrounding whitespace is ignored.
// Negative values are accepted; range checks belong to the caller.
func Parse(text string) (Rational, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Rational{}, &ParseError{Text: text, Reason: "empty"}
	}

	num, den, isFrac := strings.Cut(s, "/")
	if !isFrac {
		v, reason := parseDecimal(s)
		if reason != "" {
			return Rational{}, &ParseError{Text: text, Reason: reason}
		}
		return v, nil
	}

	n, reason := parseDecimal(strings.TrimSpace(num))
	if reason != "" {
		return Rational{}, &ParseError{Text: text, Reason: "numerator: " + reason}
	}
	d, reason := parseDecimal(strings.TrimSpace(den))
	if reason != "" {
		return Rational{}, &ParseError{Text: text, Reason: "denominator: " + reason}
	}
	q, err := n.Div(d)
	if err != nil {
		return Rational{}, &ParseError{Text: text, Reason: "zero denominator"}
	}
	return q, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) Rational {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// MaxExponent bounds the exponent of a decimal literal. Larger exponents
// would expand into integers with millions of digits.
const MaxExponent = 1000

// parseDecimal returns the value of a literal, or a non-empty reason
func parseDecimal(s string) (Rational, string) {
	if reason := checkLiteral(s); reason != "" {
		return Rational{}, reason
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return Rational{}, "not a number"
	}
	return Rational{r: d.Rat()}, ""
}

// checkLiteral accepts [+-]digits[.digits][(e|E)[+-]digits] with at least one
// mantissa digit and an exponent of at most MaxExponent in magnitude
func checkLiteral(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return "not a number"
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			if exp <= MaxExponent {
				exp = exp*10 + int(s[i]-'0')
			}
		}
		if i == start {
			return "not a number"
		}
		if exp > MaxExponent {
			return "exponent out of range"
		}
	}
	if i != len(s) {
		return "not a number"
	}
	return ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
