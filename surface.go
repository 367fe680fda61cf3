package championship

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// A Surface is the variant a Car is tuned for. It scales the Car's power into a performance rating.
type Surface interface {
	Name() string
	Factor() float64
}

// FixedSurface is a Surface with a constant factor.
type FixedSurface struct {
	name   string
	factor float64
}

// NewSurface creates a Surface with the given factor, which must be finite and positive.
func NewSurface(name string, factor float64) (*FixedSurface, error) {
	if !validFactor(factor) {
		return nil, errors.Wrapf(ErrInvalidArgument, "surface %q has invalid factor %v", name, factor)
	}

	return &FixedSurface{name: name, factor: factor}, nil
}

// validFactor reports whether factor is a finite, positive number.
func validFactor(factor float64) bool {
	return !math.IsNaN(factor) && !math.IsInf(factor, 0) && factor > 0
}

func (s *FixedSurface) Name() string {
	return s.name
}

func (s *FixedSurface) Factor() float64 {
	return s.factor
}

var (
	// SurfaceAsphalt cars get a 5% boost.
	SurfaceAsphalt Surface = &FixedSurface{name: "asphalt", factor: 1.05}

	// SurfaceGravel cars take a 13% penalty.
	SurfaceGravel Surface = &FixedSurface{name: "gravel", factor: 0.87}
)

// BuiltinSurfaces are available without configuration, keyed by name.
func BuiltinSurfaces() map[string]Surface {
	return map[string]Surface{
		SurfaceAsphalt.Name(): SurfaceAsphalt,
		SurfaceGravel.Name():  SurfaceGravel,
	}
}

// roundHalfUp rounds x to the given number of decimal places, rounding halves up. The shortest decimal
// representation of x is rounded rather than its exact binary value, so 517.65 (stored as 517.6499...)
// becomes 517.7. Non-finite values are returned unchanged.
func roundHalfUp(x float64, places int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(x, 'f', -1, 64))

	if !ok {
		return x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	// floor(n/d + 1/2) == floor((2n + d) / 2d)
	num := new(big.Int).Mul(r.Num(), big.NewInt(2))
	num.Add(num, r.Denom())
	den := new(big.Int).Mul(r.Denom(), big.NewInt(2))

	rounded, _ := new(big.Rat).SetFrac(new(big.Int).Div(num, den), scale).Float64()

	return rounded
}
