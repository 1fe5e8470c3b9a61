package fis

import (
	"math"

	"github.com/sgostarter/libfuzzy/universe"
)

func (s *System) weightedAverage(strengths []float64) (float64, bool) {
	var num, den float64

	for idx, strength := range strengths {
		if strength <= 0 {
			continue
		}

		term, _ := s.output.Term(s.rules[idx].Consequent)

		num += strength * term.Func().Peak()
		den += strength
	}

	if den == 0 {
		return math.NaN(), false
	}

	return num / den, true
}

// centroid of max-aggregated capped sets. Sampled degrees are integrated with
// trapezoid weights, so the area of a set does not depend on the domain step. A
// singleton spike only shows up in a sampled set if its value hits a sample
// exactly, so singletons are added as point masses of area level instead.
func (s *System) centroid(levels map[string]float64) (float64, bool) {
	d := s.output.Domain()
	agg := make([]float64, d.Len())

	var num, den float64

	for _, name := range s.consequents {
		level := levels[name]
		if level <= 0 {
			continue
		}

		term, _ := s.output.Term(name)

		if term.Func().IsSingleton() {
			num += level * term.Func().Peak()
			den += level

			continue
		}

		set := term.Set()
		for idx := range agg {
			agg[idx] = math.Max(agg[idx], math.Min(level, set.At(idx)))
		}
	}

	for idx, v := range agg {
		if v <= 0 {
			continue
		}

		w := spacing(d, idx)
		num += d.At(idx) * v * w
		den += v * w
	}

	if den == 0 {
		return math.NaN(), false
	}

	return num / den, true
}

// spacing is the width a sample stands for: half the distance to each neighbour.
func spacing(d universe.Domain, idx int) float64 {
	if d.Len() < 2 {
		return 1
	}

	lo, hi := idx, idx
	if idx > 0 {
		lo = idx - 1
	}

	if idx < d.Len()-1 {
		hi = idx + 1
	}

	return (d.At(hi) - d.At(lo)) / 2
}
