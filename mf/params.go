package mf

import (
	"github.com/spf13/cast"
)

// FromParams builds a function from named parameters, e.g. {"a": 5, "b": "10", "c": 15.0}.
// Values go through cast, so numbers coming from yaml, json or form fields are all accepted.
func FromParams(kind Kind, params map[string]interface{}) (Func, error) {
	names, ok := kindParamNames[kind]
	if !ok {
		return Func{}, ErrUnknownKind
	}

	ps := make([]float64, len(names))

	for idx, name := range names {
		v, exists := params[name]
		if !exists {
			return Func{}, invalidError(kind, name+" required", nil)
		}

		f, err := cast.ToFloat64E(v)
		if err != nil {
			return Func{}, invalidError(kind, name+" numeric", nil)
		}

		ps[idx] = f
	}

	return New(kind, ps...)
}

// NamedParams is the inverse of FromParams.
func (f Func) NamedParams() map[string]float64 {
	m := make(map[string]float64, len(f.params))

	for idx, name := range kindParamNames[f.kind] {
		m[name] = f.params[idx]
	}

	return m
}
