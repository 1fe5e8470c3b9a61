package builder

import (
	"fmt"
	"strings"

	"github.com/sgostarter/libfuzzy/fis"
	"github.com/sgostarter/libfuzzy/mf"
	"github.com/sgostarter/libfuzzy/universe"
	"github.com/sgostarter/libfuzzy/variable"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// KindSingleton is accepted in definitions as a shorthand for trimf [v, v, v].
const KindSingleton = "singleton"

// Domain is arange(start, stop, step). When Points is set the range fields are
// ignored and the domain is exactly those sample positions.
type Domain struct {
	Start  float64   `yaml:"start" json:"start"`
	Stop   float64   `yaml:"stop" json:"stop"`
	Step   float64   `yaml:"step" json:"step"`
	Points []float64 `yaml:"points,omitempty" json:"points,omitempty"`
}

func (d Domain) Universe() (universe.Domain, error) {
	if len(d.Points) > 0 {
		return universe.New(d.Points)
	}

	return universe.Arange(d.Start, d.Stop, d.Step)
}

type TermDef struct {
	Name   string                 `yaml:"name" json:"name"`
	Kind   string                 `yaml:"kind" json:"kind"`
	Params map[string]interface{} `yaml:"params" json:"params"`
}

type VariableDef struct {
	Name   string    `yaml:"name" json:"name"`
	Domain Domain    `yaml:"domain" json:"domain"`
	Terms  []TermDef `yaml:"terms" json:"terms"`
}

type RuleDef struct {
	If         []string `yaml:"if" json:"if"`
	Connective string   `yaml:"connective,omitempty" json:"connective,omitempty"`
	Then       string   `yaml:"then" json:"then"`
}

// Definition is the serialisable description of a single-input, single-output system.
type Definition struct {
	Name        string      `yaml:"name" json:"name"`
	Input       VariableDef `yaml:"input" json:"input"`
	Output      VariableDef `yaml:"output" json:"output"`
	Rules       []RuleDef   `yaml:"rules" json:"rules"`
	Defuzzifier string      `yaml:"defuzzifier,omitempty" json:"defuzzifier,omitempty"`
}

// Clone is a deep copy; stored definitions never share slices or maps with callers.
func (def *Definition) Clone() *Definition {
	if def == nil {
		return nil
	}

	cp := *def
	cp.Input = def.Input.clone()
	cp.Output = def.Output.clone()

	cp.Rules = nil
	for _, rd := range def.Rules {
		rd.If = append([]string(nil), rd.If...)
		cp.Rules = append(cp.Rules, rd)
	}

	return &cp
}

func (vd VariableDef) clone() VariableDef {
	vd.Domain.Points = append([]float64(nil), vd.Domain.Points...)

	terms := vd.Terms
	vd.Terms = nil

	for _, td := range terms {
		params := make(map[string]interface{}, len(td.Params))
		for k, v := range td.Params {
			params[k] = v
		}

		td.Params = params
		vd.Terms = append(vd.Terms, td)
	}

	return vd
}

func ParseDefinition(d []byte) (*Definition, error) {
	var def Definition

	if err := yaml.Unmarshal(d, &def); err != nil {
		return nil, err
	}

	return &def, nil
}

func (def *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(def)
}

// Build turns a definition into a ready system. Caller options come first, the
// definition's own defuzzifier overrides them.
func Build(def *Definition, opts ...fis.Option) (*fis.System, error) {
	if def == nil {
		return nil, ErrNoDefinition
	}

	input, err := buildVariable(def.Input, variable.RoleAntecedent)
	if err != nil {
		return nil, err
	}

	output, err := buildVariable(def.Output, variable.RoleConsequent)
	if err != nil {
		return nil, err
	}

	rules := make([]fis.Rule, 0, len(def.Rules))

	for idx, rd := range def.Rules {
		connective, err := fis.ParseConnective(rd.Connective)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", idx+1, err)
		}

		rule := fis.NewRule(rd.Then, rd.If...)
		rule.Connective = connective

		rules = append(rules, rule)
	}

	if def.Defuzzifier != "" {
		d, err := fis.ParseDefuzzifier(def.Defuzzifier)
		if err != nil {
			return nil, err
		}

		opts = append(append([]fis.Option(nil), opts...), fis.WithDefuzzifier(d))
	}

	return fis.NewSystem(input, output, rules, opts...)
}

func buildVariable(vd VariableDef, role variable.Role) (*variable.Variable, error) {
	d, err := vd.Domain.Universe()
	if err != nil {
		return nil, fmt.Errorf("%s domain: %w", vd.Name, err)
	}

	specs := make([]variable.TermSpec, 0, len(vd.Terms))

	for _, td := range vd.Terms {
		f, err := buildFunc(td)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", vd.Name, td.Name, err)
		}

		specs = append(specs, variable.TermSpec{Name: td.Name, Func: f})
	}

	return variable.New(vd.Name, role, d, specs...)
}

func buildFunc(td TermDef) (mf.Func, error) {
	if strings.EqualFold(strings.TrimSpace(td.Kind), KindSingleton) {
		if len(td.Params) != 1 {
			return mf.Func{}, ErrSingletonParams
		}

		for _, v := range td.Params {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return mf.Func{}, fmt.Errorf("%v: %w", v, ErrSingletonParams)
			}

			return mf.Singleton(f)
		}
	}

	kind, err := mf.ParseKind(td.Kind)
	if err != nil {
		return mf.Func{}, err
	}

	return mf.FromParams(kind, td.Params)
}

// TermFromFunc is the definition form of an already built function.
func TermFromFunc(name string, f mf.Func) TermDef {
	if f.IsSingleton() {
		return TermDef{
			Name:   name,
			Kind:   KindSingleton,
			Params: map[string]interface{}{"value": f.Peak()},
		}
	}

	params := make(map[string]interface{})
	for k, v := range f.NamedParams() {
		params[k] = v
	}

	return TermDef{
		Name:   name,
		Kind:   string(f.Kind()),
		Params: params,
	}
}
