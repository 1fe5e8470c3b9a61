package variable

import (
	"strings"

	"github.com/sgostarter/libfuzzy/fuzzyset"
	"github.com/sgostarter/libfuzzy/mf"
	"github.com/sgostarter/libfuzzy/universe"
)

type Role int

const (
	RoleAntecedent Role = iota
	RoleConsequent
)

func (r Role) String() string {
	switch r {
	case RoleAntecedent:
		return "antecedent"
	case RoleConsequent:
		return "consequent"
	}

	return "unknown"
}

type TermSpec struct {
	Name string
	Func mf.Func
}

type Term struct {
	name string
	fn   mf.Func
	set  fuzzyset.Set
}

func (t Term) Name() string {
	return t.name
}

func (t Term) Func() mf.Func {
	return t.fn
}

// Set is the term's function sampled on the owning variable's domain.
func (t Term) Set() fuzzyset.Set {
	return t.set
}

type Degree struct {
	Term   string
	Degree float64
}

type TermActivation struct {
	Term   string
	Level  float64
	Capped fuzzyset.Set
}

// Variable is a linguistic variable. It owns its terms and is immutable once built;
// changing a term means building a new Variable.
type Variable struct {
	name   string
	role   Role
	domain universe.Domain
	terms  []Term
	index  map[string]int
}

func New(name string, role Role, d universe.Domain, specs ...TermSpec) (*Variable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoName
	}

	if d.IsEmpty() {
		return nil, universe.ErrEmpty
	}

	v := &Variable{
		name:   name,
		role:   role,
		domain: d,
		terms:  make([]Term, 0, len(specs)),
		index:  make(map[string]int, len(specs)),
	}

	for _, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, ErrNoName
		}

		if _, ok := v.index[spec.Name]; ok {
			return nil, duplicateTermError(name, spec.Name)
		}

		if spec.Func.IsZero() {
			return nil, invalidTermError(name, spec.Name)
		}

		v.index[spec.Name] = len(v.terms)
		v.terms = append(v.terms, Term{
			name: spec.Name,
			fn:   spec.Func,
			set:  fuzzyset.FromFunc(d, spec.Func),
		})
	}

	return v, nil
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) Role() Role {
	return v.role
}

func (v *Variable) Domain() universe.Domain {
	return v.domain
}

// Terms returns the terms in definition order.
func (v *Variable) Terms() []Term {
	return append([]Term(nil), v.terms...)
}

func (v *Variable) TermNames() []string {
	names := make([]string, 0, len(v.terms))
	for _, term := range v.terms {
		names = append(names, term.name)
	}

	return names
}

func (v *Variable) Term(name string) (Term, bool) {
	idx, ok := v.index[name]
	if !ok {
		return Term{}, false
	}

	return v.terms[idx], true
}

func (v *Variable) HasTerm(name string) bool {
	_, ok := v.index[name]

	return ok
}

// MembershipAt is the interpolated degree of point in the named term.
func (v *Variable) MembershipAt(termName string, point float64) (float64, error) {
	term, ok := v.Term(termName)
	if !ok {
		return 0, unknownTermError(v.name, termName)
	}

	return fuzzyset.MembershipAt(term.set, point), nil
}

// Fuzzify converts a crisp value into degrees for every term.
func (v *Variable) Fuzzify(point float64) []Degree {
	ds := make([]Degree, 0, len(v.terms))

	for _, term := range v.terms {
		ds = append(ds, Degree{
			Term:   term.name,
			Degree: fuzzyset.MembershipAt(term.set, point),
		})
	}

	return ds
}

// Activation returns, per term, the degree at point and the term curve capped at it.
func (v *Variable) Activation(point float64) []TermActivation {
	as := make([]TermActivation, 0, len(v.terms))

	for _, term := range v.terms {
		level := fuzzyset.MembershipAt(term.set, point)

		as = append(as, TermActivation{
			Term:   term.name,
			Level:  level,
			Capped: fuzzyset.Cap(term.set, level),
		})
	}

	return as
}
