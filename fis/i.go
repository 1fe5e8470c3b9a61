package fis

import (
	"strings"
)

type Connective int

const (
	And Connective = iota
	Or
)

func (c Connective) String() string {
	if c == Or {
		return "or"
	}

	return "and"
}

func ParseConnective(s string) (Connective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and", "min":
		return And, nil
	case "or", "max":
		return Or, nil
	}

	return And, ErrUnknownConnective
}

// Defuzzifier selects how the aggregated output becomes a crisp value.
type Defuzzifier string

const (
	// WeightedAverage sums strength*peak over fired rules and divides by the total
	// strength. Exact for singleton consequents.
	WeightedAverage Defuzzifier = "weighted_average"
	// Centroid takes the centre of gravity of the max-aggregated capped consequent
	// sets, integrated over the output domain. A singleton consequent fired at
	// level s enters as a point mass of weight s, the same as a sampled set of
	// area s, so mixed outputs do not depend on the domain step.
	Centroid Defuzzifier = "centroid"
)

func ParseDefuzzifier(s string) (Defuzzifier, error) {
	switch Defuzzifier(strings.ToLower(strings.TrimSpace(s))) {
	case "", WeightedAverage, "wtaver":
		return WeightedAverage, nil
	case Centroid:
		return Centroid, nil
	}

	return "", ErrUnknownDefuzzifier
}

type State int

const (
	StateBuilt State = iota
	StateEvaluated
)

func (s State) String() string {
	if s == StateEvaluated {
		return "evaluated"
	}

	return "built"
}

// Result carries one evaluation. When Defined is false Output is NaN.
type Result struct {
	Input       float64
	Output      float64
	Defined     bool
	Defuzzifier Defuzzifier

	// Strengths is indexed like the system's rules.
	Strengths []float64
	// Terms holds the aggregated activation of every consequent term referenced by a rule.
	Terms map[string]float64
}
