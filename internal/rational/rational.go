package rational

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrDivideByZero is returned when a rational is divided by zero
var ErrDivideByZero = errors.New("division by zero")

// Rational is an exact fraction held in lowest terms with a positive denominator.
// Values are immutable: every operation returns a new Rational and never
// touches its operands. The zero value is 0.
type Rational struct {
	r *big.Rat
}

// New returns num/den reduced to lowest terms.
// It panics if den is zero, like big.NewRat.
func New(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// FromInt returns the integer n as a Rational
func FromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// Zero and One are convenience constants
var (
	Zero = Rational{}
	One  = FromInt(1)
)

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Num returns a copy of the numerator
func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

// Denom returns a copy of the (always positive) denominator
func (a Rational) Denom() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

// Add returns a+b
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a-b
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a*b
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Div returns a/b, or ErrDivideByZero when b is zero
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivideByZero
	}
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

// Pow raises a to a non-negative integer power. Pow(0) is 1, including for 0.
func (a Rational) Pow(n uint) Rational {
	base := a.rat()
	e := new(big.Int).SetUint64(uint64(n))
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	return Rational{r: new(big.Rat).SetFrac(num, den)}
}

// Neg returns -a
func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.rat())}
}

// Half returns a/2
func (a Rational) Half() Rational {
	return a.Mul(New(1, 2))
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether a and b are the same value
func (a Rational) Equal(b Rational) bool {
	return a.Cmp(b) == 0
}

// GreaterThan reports whether a > b
func (a Rational) GreaterThan(b Rational) bool {
	return a.Cmp(b) > 0
}

// LessThan reports whether a < b
func (a Rational) LessThan(b Rational) bool {
	return a.Cmp(b) < 0
}

// Sign returns -1, 0 or +1
func (a Rational) Sign() int {
	return a.rat().Sign()
}

// IsZero reports whether a is 0
func (a Rational) IsZero() bool {
	return a.Sign() == 0
}

// IsInteger reports whether the denominator is 1
func (a Rational) IsInteger() bool {
	return a.rat().IsInt()
}

// Max returns the larger of a and b
func Max(a, b Rational) Rational {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Min returns the smaller of a and b
func Min(a, b Rational) Rational {
	if a.GreaterThan(b) {
		return b
	}
	return a
}

// Float64 returns the nearest float64. Only meant for plotting and display;
// all property arithmetic stays exact.
func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

// FractionString renders a as "n/d", or just "n" for integers
func (a Rational) FractionString() string {
	r := a.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}

// DecimalString renders a rounded to precision decimal places (half away from
// zero) with trailing zeros removed
func (a Rational) DecimalString(precision int32) string {
	r := a.rat()
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, precision).String()
}

// String implements fmt.Stringer with the fraction form
func (a Rational) String() string {
	return a.FractionString()
}

// MarshalText implements encoding.TextMarshaler
func (a Rational) MarshalText() ([]byte, error) {
	return []byte(a.FractionString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (a *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
