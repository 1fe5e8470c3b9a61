package fuzzyset

import (
	"math"

	"github.com/sgostarter/libfuzzy/mf"
	"github.com/sgostarter/libfuzzy/universe"
)

// Set is a membership curve sampled on a domain.
type Set struct {
	domain  universe.Domain
	degrees []float64
}

func New(d universe.Domain, degrees []float64) (Set, error) {
	if d.Len() != len(degrees) {
		return Set{}, ErrDomainMismatch
	}

	for _, v := range degrees {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return Set{}, ErrDegreeOutOfRange
		}
	}

	return Set{
		domain:  d,
		degrees: append([]float64(nil), degrees...),
	}, nil
}

func FromFunc(d universe.Domain, f mf.Func) Set {
	return Set{
		domain:  d,
		degrees: f.Sample(d),
	}
}

func (s Set) Domain() universe.Domain {
	return s.domain
}

func (s Set) Len() int {
	return len(s.degrees)
}

func (s Set) At(idx int) float64 {
	return s.degrees[idx]
}

func (s Set) Degrees() []float64 {
	return append([]float64(nil), s.degrees...)
}

func (s Set) Max() float64 {
	m := 0.0

	for _, v := range s.degrees {
		if v > m {
			m = v
		}
	}

	return m
}

// ArgMax returns the first domain position holding the highest degree.
func (s Set) ArgMax() (x, degree float64) {
	if len(s.degrees) == 0 {
		return math.NaN(), 0
	}

	idxMax := 0

	for idx, v := range s.degrees {
		if v > s.degrees[idxMax] {
			idxMax = idx
		}
	}

	return s.domain.At(idxMax), s.degrees[idxMax]
}

func Intersection(a, b Set) (Set, error) {
	return combine(a, b, math.Min)
}

func Union(a, b Set) (Set, error) {
	return combine(a, b, math.Max)
}

func Complement(a Set) Set {
	ys := make([]float64, len(a.degrees))
	for idx, v := range a.degrees {
		ys[idx] = 1 - v
	}

	return Set{
		domain:  a.domain,
		degrees: ys,
	}
}

// Cap clips the curve at level, the shape a term contributes when its rule fires at that strength.
func Cap(a Set, level float64) Set {
	if level < 0 {
		level = 0
	}

	ys := make([]float64, len(a.degrees))
	for idx, v := range a.degrees {
		ys[idx] = math.Min(level, v)
	}

	return Set{
		domain:  a.domain,
		degrees: ys,
	}
}

// MembershipAt linearly interpolates the curve at point, holding the boundary
// sample outside the domain.
func MembershipAt(s Set, point float64) float64 {
	n := len(s.degrees)
	if n == 0 || math.IsNaN(point) {
		return 0
	}

	if point <= s.domain.At(0) {
		return s.degrees[0]
	}

	if point >= s.domain.At(n-1) {
		return s.degrees[n-1]
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.domain.At(mid) <= point {
			lo = mid
		} else {
			hi = mid
		}
	}

	x0, x1 := s.domain.At(lo), s.domain.At(hi)
	if point == x0 {
		return s.degrees[lo]
	}

	return s.degrees[lo] + (s.degrees[hi]-s.degrees[lo])*(point-x0)/(x1-x0)
}

func combine(a, b Set, op func(x, y float64) float64) (Set, error) {
	if !universe.Equal(a.domain, b.domain) {
		return Set{}, ErrDomainMismatch
	}

	ys := make([]float64, len(a.degrees))
	for idx := range ys {
		ys[idx] = op(a.degrees[idx], b.degrees[idx])
	}

	return Set{
		domain:  a.domain,
		degrees: ys,
	}, nil
}
