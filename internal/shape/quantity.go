package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/rational"
)

// ErrMixedScale is returned when quantities with different π exponents are combined
var ErrMixedScale = errors.New("cannot combine π-scaled and unscaled quantities")

// Quantity is an exact value read as Coef · π^Pi.
// Circle areas and moments carry Pi = 1; everything else has Pi = 0.
type Quantity struct {
	Coef rational.Rational
	Pi   int
}

// Plain wraps a rational with no π factor
func Plain(r rational.Rational) Quantity {
	return Quantity{Coef: r}
}

// Scaled wraps a rational as r·π
func Scaled(r rational.Rational) Quantity {
	return Quantity{Coef: r, Pi: 1}
}

// Add returns q+o. Both must carry the same π exponent.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.Pi != o.Pi {
		return Quantity{}, fmt.Errorf("%w: %s + %s", ErrMixedScale, q, o)
	}
	return Quantity{Coef: q.Coef.Add(o.Coef), Pi: q.Pi}, nil
}

// Sub returns q-o under the same rule as Add
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.Add(o.Neg())
}

// Neg negates the coefficient
func (q Quantity) Neg() Quantity {
	return Quantity{Coef: q.Coef.Neg(), Pi: q.Pi}
}

// Scale multiplies the coefficient by a plain rational
func (q Quantity) Scale(r rational.Rational) Quantity {
	return Quantity{Coef: q.Coef.Mul(r), Pi: q.Pi}
}

// Ratio returns q/o as a plain rational. Both must carry the same π exponent.
func (q Quantity) Ratio(o Quantity) (rational.Rational, error) {
	if q.Pi != o.Pi {
		return rational.Rational{}, fmt.Errorf("%w: %s / %s", ErrMixedScale, q, o)
	}
	return q.Coef.Div(o.Coef)
}

// Equal compares coefficient and π exponent. Zero equals zero at any scale.
func (q Quantity) Equal(o Quantity) bool {
	if q.Coef.IsZero() && o.Coef.IsZero() {
		return true
	}
	return q.Pi == o.Pi && q.Coef.Equal(o.Coef)
}

// IsZero reports whether the coefficient is 0
func (q Quantity) IsZero() bool {
	return q.Coef.IsZero()
}

// Float64 approximates the value including π. For display and plotting only.
func (q Quantity) Float64() float64 {
	return q.Coef.Float64() * math.Pow(math.Pi, float64(q.Pi))
}

// FractionString renders the coefficient as a fraction with a π suffix when scaled
func (q Quantity) FractionString() string {
	return q.Coef.FractionString() + q.suffix()
}

// DecimalString renders the coefficient as a decimal with a π suffix when scaled
func (q Quantity) DecimalString(precision int32) string {
	return q.Coef.DecimalString(precision) + q.suffix()
}

// String is FractionString
func (q Quantity) String() string {
	return q.FractionString()
}

func (q Quantity) suffix() string {
	switch {
	case q.Pi == 0:
		return ""
	case q.Pi == 1:
		return "π"
	default:
		return fmt.Sprintf("π^%d", q.Pi)
	}
}

// ParseQuantity reads the String form back: "120", "3/2", "16π", "12pi"
func ParseQuantity(text string) (Quantity, error) {
	s := strings.TrimSpace(text)
	pi := 0
	for _, suffix := range []string{"π", "pi", "PI", "Pi"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			pi = 1
			break
		}
	}
	if pi == 1 && s == "" {
		s = "1"
	}
	coef, err := rational.Parse(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coef: coef, Pi: pi}, nil
}
