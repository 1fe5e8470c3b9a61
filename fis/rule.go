package fis

import (
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/libfuzzy/variable"
)

// Rule maps antecedent terms of the input variable to one consequent term of
// the output variable. Terms are referenced by name only.
type Rule struct {
	Antecedents []string
	Connective  Connective
	Consequent  string
}

func NewRule(consequent string, antecedents ...string) Rule {
	return Rule{
		Antecedents: append([]string(nil), antecedents...),
		Connective:  And,
		Consequent:  consequent,
	}
}

func NewOrRule(consequent string, antecedents ...string) Rule {
	r := NewRule(consequent, antecedents...)
	r.Connective = Or

	return r
}

// Fire is the rule's firing strength for x. A single literal's degree is the
// strength itself; several literals combine with min (And) or max (Or).
func (r Rule) Fire(input *variable.Variable, x float64) (float64, error) {
	if len(r.Antecedents) == 0 {
		return 0, ErrEmptyRule
	}

	var strength float64

	for idx, name := range r.Antecedents {
		d, err := input.MembershipAt(name, x)
		if err != nil {
			return 0, err
		}

		switch {
		case idx == 0:
			strength = d
		case r.Connective == Or:
			strength = math.Max(strength, d)
		default:
			strength = math.Min(strength, d)
		}
	}

	return strength, nil
}

func (r Rule) Describe(inputName, outputName string) string {
	literals := make([]string, 0, len(r.Antecedents))
	for _, name := range r.Antecedents {
		literals = append(literals, fmt.Sprintf("(%s IS %s)", inputName, name))
	}

	return fmt.Sprintf("IF %s THEN (%s IS %s)",
		strings.Join(literals, " "+strings.ToUpper(r.Connective.String())+" "), outputName, r.Consequent)
}
