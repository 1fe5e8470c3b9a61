package universe

import (
	"math"
)

const arangeTolerance = 1e-9

// Domain is an ordered, strictly increasing sampling of a universe of discourse.
// It is never modified after construction.
type Domain struct {
	points []float64
}

func New(points []float64) (Domain, error) {
	if len(points) == 0 {
		return Domain{}, ErrEmpty
	}

	for idx, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Domain{}, ErrNotFinite
		}

		if idx > 0 && p <= points[idx-1] {
			return Domain{}, ErrNotIncreasing
		}
	}

	return Domain{
		points: append([]float64(nil), points...),
	}, nil
}

// Arange follows numpy.arange: start + i*step for every i whose value is below stop.
func Arange(start, stop, step float64) (Domain, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return Domain{}, ErrBadStep
	}

	n := int(math.Ceil((stop - start) / step))

	// stop is exclusive; drop a last point that only exists through rounding
	for n > 0 && start+float64(n-1)*step >= stop-step*arangeTolerance {
		n--
	}

	if n <= 0 {
		return Domain{}, ErrEmpty
	}

	points := make([]float64, n)
	for idx := range points {
		points[idx] = start + float64(idx)*step
	}

	return New(points)
}

// Linspace returns n evenly spaced points over [start, stop], both ends included.
func Linspace(start, stop float64, n int) (Domain, error) {
	if n <= 0 {
		return Domain{}, ErrEmpty
	}

	if n == 1 {
		return New([]float64{start})
	}

	step := (stop - start) / float64(n-1)

	points := make([]float64, n)
	for idx := range points {
		points[idx] = start + float64(idx)*step
	}

	points[n-1] = stop

	return New(points)
}

func MustArange(start, stop, step float64) Domain {
	d, err := Arange(start, stop, step)
	if err != nil {
		panic(err)
	}

	return d
}

func MustLinspace(start, stop float64, n int) Domain {
	d, err := Linspace(start, stop, n)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Domain) Len() int {
	return len(d.points)
}

func (d Domain) At(idx int) float64 {
	return d.points[idx]
}

func (d Domain) Min() float64 {
	if len(d.points) == 0 {
		return math.NaN()
	}

	return d.points[0]
}

func (d Domain) Max() float64 {
	if len(d.points) == 0 {
		return math.NaN()
	}

	return d.points[len(d.points)-1]
}

// Points returns a copy of the sample positions.
func (d Domain) Points() []float64 {
	return append([]float64(nil), d.points...)
}

func (d Domain) IsEmpty() bool {
	return len(d.points) == 0
}

// Equal reports whether both domains sample exactly the same positions.
func Equal(d1, d2 Domain) bool {
	if len(d1.points) != len(d2.points) {
		return false
	}

	for idx := range d1.points {
		if d1.points[idx] != d2.points[idx] {
			return false
		}
	}

	return true
}
