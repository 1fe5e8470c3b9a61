package fis

import (
	"fmt"
	"math"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfuzzy/variable"
	"github.com/spf13/cast"
)

// System is a single-input, single-output Mamdani rule base. It is immutable:
// a configuration change builds a new System, and Evaluate only reads.
type System struct {
	id          uint64
	logger      l.Wrapper
	input       *variable.Variable
	output      *variable.Variable
	rules       []Rule
	defuzzifier Defuzzifier

	// consequent terms referenced by at least one rule, in first-use order
	consequents []string
}

func NewSystem(input, output *variable.Variable, rules []Rule, opts ...Option) (*System, error) {
	o := optionNew(opts...)

	if input == nil || output == nil {
		return nil, ErrNoVariable
	}

	if input.Role() != variable.RoleAntecedent {
		return nil, fmt.Errorf("%s is %s: %w", input.Name(), input.Role(), ErrRole)
	}

	if output.Role() != variable.RoleConsequent {
		return nil, fmt.Errorf("%s is %s: %w", output.Name(), output.Role(), ErrRole)
	}

	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	if _, err := ParseDefuzzifier(string(o.defuzzifier)); err != nil {
		return nil, err
	}

	s := &System{
		id:          snowflake.ID(),
		input:       input,
		output:      output,
		rules:       make([]Rule, 0, len(rules)),
		defuzzifier: o.defuzzifier,
	}

	s.logger = o.logger.WithFields(l.StringField(l.ClsKey, "fisSystem"),
		l.StringField("system", cast.ToString(s.id)))

	seen := make(map[string]bool)

	for idx, rule := range rules {
		if len(rule.Antecedents) == 0 {
			return nil, fmt.Errorf("rule %d: %w", idx+1, ErrEmptyRule)
		}

		for _, name := range rule.Antecedents {
			if !input.HasTerm(name) {
				return nil, fmt.Errorf("rule %d: %s.%s: %w", idx+1, input.Name(), name, variable.ErrUnknownTerm)
			}
		}

		if !output.HasTerm(rule.Consequent) {
			return nil, fmt.Errorf("rule %d: %s.%s: %w", idx+1, output.Name(), rule.Consequent, variable.ErrUnknownTerm)
		}

		if !seen[rule.Consequent] {
			seen[rule.Consequent] = true
			s.consequents = append(s.consequents, rule.Consequent)
		}

		rule.Antecedents = append([]string(nil), rule.Antecedents...)
		s.rules = append(s.rules, rule)
	}

	return s, nil
}

func (s *System) ID() uint64 {
	return s.id
}

func (s *System) Input() *variable.Variable {
	return s.input
}

func (s *System) Output() *variable.Variable {
	return s.output
}

func (s *System) Rules() []Rule {
	rules := make([]Rule, 0, len(s.rules))
	for _, rule := range s.rules {
		rule.Antecedents = append([]string(nil), rule.Antecedents...)
		rules = append(rules, rule)
	}

	return rules
}

func (s *System) Defuzzifier() Defuzzifier {
	return s.defuzzifier
}

// Evaluate fuzzifies x, fires every rule, aggregates and defuzzifies.
// When nothing fires the Result is returned with Defined false together with
// ErrUndefinedOutput; the output is never reported as 0.
func (s *System) Evaluate(x float64) (Result, error) {
	if math.IsNaN(x) {
		return Result{Input: x, Output: math.NaN(), Defuzzifier: s.defuzzifier}, ErrInvalidInput
	}

	r := Result{
		Input:       x,
		Output:      math.NaN(),
		Defuzzifier: s.defuzzifier,
		Strengths:   make([]float64, len(s.rules)),
		Terms:       make(map[string]float64, len(s.consequents)),
	}

	for _, name := range s.consequents {
		r.Terms[name] = 0
	}

	for idx, rule := range s.rules {
		strength, err := rule.Fire(s.input, x)
		if err != nil {
			return r, err
		}

		r.Strengths[idx] = strength

		if strength > r.Terms[rule.Consequent] {
			r.Terms[rule.Consequent] = strength
		}
	}

	var (
		out     float64
		defined bool
	)

	switch s.defuzzifier {
	case Centroid:
		out, defined = s.centroid(r.Terms)
	default:
		out, defined = s.weightedAverage(r.Strengths)
	}

	if !defined {
		s.logger.WithFields(l.StringField("input", cast.ToString(x))).Debug("no rule fired")

		return r, ErrUndefinedOutput
	}

	r.Output = out
	r.Defined = true

	return r, nil
}
