package mf

import (
	"strings"
)

type Kind string

const (
	KindTriangular      Kind = "trimf"
	KindTrapezoidal     Kind = "trapmf"
	KindGaussian        Kind = "gaussmf"
	KindGeneralizedBell Kind = "gbellmf"
	KindSigmoid         Kind = "sigmf"
	KindZShaped         Kind = "zmf"
	KindSShaped         Kind = "smf"
)

var kindParamNames = map[Kind][]string{
	KindTriangular:      {"a", "b", "c"},
	KindTrapezoidal:     {"a", "b", "c", "d"},
	KindGaussian:        {"mean", "sigma"},
	KindGeneralizedBell: {"a", "b", "c"},
	KindSigmoid:         {"center", "slope"},
	KindZShaped:         {"a", "b"},
	KindSShaped:         {"a", "b"},
}

var kindAliases = map[string]Kind{
	"triangular":       KindTriangular,
	"trapezoidal":      KindTrapezoidal,
	"gaussian":         KindGaussian,
	"gauss":            KindGaussian,
	"generalizedbell":  KindGeneralizedBell,
	"generalized_bell": KindGeneralizedBell,
	"bell":             KindGeneralizedBell,
	"sigmoid":          KindSigmoid,
	"z":                KindZShaped,
	"zshaped":          KindZShaped,
	"s":                KindSShaped,
	"sshaped":          KindSShaped,
}

func Kinds() []Kind {
	return []Kind{KindTriangular, KindTrapezoidal, KindGaussian, KindGeneralizedBell,
		KindSigmoid, KindZShaped, KindSShaped}
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if _, ok := kindParamNames[Kind(s)]; ok {
		return Kind(s), nil
	}

	if kind, ok := kindAliases[s]; ok {
		return kind, nil
	}

	return "", ErrUnknownKind
}

// ParamNames lists the named parameters of a kind in positional order.
func ParamNames(kind Kind) []string {
	return append([]string(nil), kindParamNames[kind]...)
}

// Func is a validated membership function: a family tag plus its parameters.
type Func struct {
	kind   Kind
	params []float64
}

func (f Func) Kind() Kind {
	return f.kind
}

func (f Func) Params() []float64 {
	return append([]float64(nil), f.params...)
}

func (f Func) IsZero() bool {
	return f.kind == ""
}

// IsSingleton reports a degenerate triangle [v, v, v].
func (f Func) IsSingleton() bool {
	return f.kind == KindTriangular && f.params[0] == f.params[1] && f.params[1] == f.params[2]
}
