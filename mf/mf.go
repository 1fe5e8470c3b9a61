package mf

import (
	"math"

	"github.com/sgostarter/libfuzzy/universe"
)

func Triangular(a, b, c float64) (Func, error) {
	return New(KindTriangular, a, b, c)
}

func Trapezoidal(a, b, c, d float64) (Func, error) {
	return New(KindTrapezoidal, a, b, c, d)
}

func Gaussian(mean, sigma float64) (Func, error) {
	return New(KindGaussian, mean, sigma)
}

func GeneralizedBell(a, b, c float64) (Func, error) {
	return New(KindGeneralizedBell, a, b, c)
}

func Sigmoid(center, slope float64) (Func, error) {
	return New(KindSigmoid, center, slope)
}

func ZShaped(a, b float64) (Func, error) {
	return New(KindZShaped, a, b)
}

func SShaped(a, b float64) (Func, error) {
	return New(KindSShaped, a, b)
}

// Singleton is the spike trimf [v, v, v].
func Singleton(v float64) (Func, error) {
	return New(KindTriangular, v, v, v)
}

// New validates params against the family constraints. Out of order parameters
// are reported, never reordered.
func New(kind Kind, params ...float64) (Func, error) {
	names, ok := kindParamNames[kind]
	if !ok {
		return Func{}, ErrUnknownKind
	}

	params = append([]float64(nil), params...)

	if len(params) != len(names) {
		return Func{}, invalidError(kind, "arity", params)
	}

	for idx, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Func{}, invalidError(kind, names[idx]+" finite", params)
		}
	}

	if err := validate(kind, params); err != nil {
		return Func{}, err
	}

	return Func{
		kind:   kind,
		params: params,
	}, nil
}

func validate(kind Kind, p []float64) error {
	switch kind {
	case KindTriangular:
		if p[0] > p[1] {
			return orderError(kind, "a <= b", p)
		}

		if p[1] > p[2] {
			return orderError(kind, "b <= c", p)
		}
	case KindTrapezoidal:
		if p[0] > p[1] {
			return orderError(kind, "a <= b", p)
		}

		if p[1] > p[2] {
			return orderError(kind, "b <= c", p)
		}

		if p[2] > p[3] {
			return orderError(kind, "c <= d", p)
		}
	case KindGaussian:
		if p[1] <= 0 {
			return invalidError(kind, "sigma > 0", p)
		}
	case KindGeneralizedBell:
		if p[0] == 0 {
			return invalidError(kind, "a != 0", p)
		}
	case KindZShaped, KindSShaped:
		if p[0] > p[1] {
			return orderError(kind, "a <= b", p)
		}
	}

	return nil
}

// Degree evaluates the function at a single point. A zero Func yields 0.
func (f Func) Degree(x float64) float64 {
	p := f.params

	switch f.kind {
	case KindTriangular:
		return triangular(x, p[0], p[1], p[2])
	case KindTrapezoidal:
		return trapezoidal(x, p[0], p[1], p[2], p[3])
	case KindGaussian:
		return clamp01(math.Exp(-((x - p[0]) * (x - p[0])) / (2 * p[1] * p[1])))
	case KindGeneralizedBell:
		return clamp01(1 / (1 + math.Pow(math.Abs((x-p[2])/p[0]), 2*p[1])))
	case KindSigmoid:
		return clamp01(1 / (1 + math.Exp(-p[1]*(x-p[0]))))
	case KindSShaped:
		return sShaped(x, p[0], p[1])
	case KindZShaped:
		return 1 - sShaped(x, p[0], p[1])
	}

	return 0
}

// Sample evaluates the function on every point of the domain.
func (f Func) Sample(d universe.Domain) []float64 {
	ys := make([]float64, d.Len())
	for idx := range ys {
		ys[idx] = f.Degree(d.At(idx))
	}

	return ys
}

// Peak is the crisp value a term stands for when used as a singleton consequent.
func (f Func) Peak() float64 {
	p := f.params

	switch f.kind {
	case KindTriangular:
		return p[1]
	case KindTrapezoidal:
		return (p[1] + p[2]) / 2
	case KindGaussian, KindSigmoid:
		return p[0]
	case KindGeneralizedBell:
		return p[2]
	case KindZShaped:
		return p[0]
	case KindSShaped:
		return p[1]
	}

	return math.NaN()
}

// Zero is the all-zero curve, a fallback for callers that refuse to draw an invalid function.
func Zero(d universe.Domain) []float64 {
	return make([]float64, d.Len())
}

func triangular(x, a, b, c float64) float64 {
	switch {
	case x == b:
		return 1
	case x <= a || x >= c:
		return 0
	case x < b:
		return clamp01((x - a) / (b - a))
	default:
		return clamp01((c - x) / (c - b))
	}
}

func trapezoidal(x, a, b, c, d float64) float64 {
	switch {
	case x >= b && x <= c:
		return 1
	case x <= a || x >= d:
		return 0
	case x < b:
		return clamp01((x - a) / (b - a))
	default:
		return clamp01((d - x) / (d - c))
	}
}

func sShaped(x, a, b float64) float64 {
	if x <= a && a < b {
		return 0
	}

	if x >= b {
		return 1
	}

	if x < a {
		return 0
	}

	mid := (a + b) / 2

	if x < mid {
		t := (x - a) / (b - a)

		return clamp01(2 * t * t)
	}

	t := (x - b) / (b - a)

	return clamp01(1 - 2*t*t)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
