package builder

import (
	"math"
	"strconv"
	"strings"
)

var (
	DefaultCenters = []float64{-1, -0.6, 0, 0.4, 1}
	DefaultLevels  = []float64{1, 0.36, 0, 0.16, 1}
	DefaultNames   = []string{"bn", "n", "z", "p", "pb"}
)

const (
	DefaultSigma = 0.15
	DefaultStep  = 0.01
)

// SigmaConfig describes the Gaussian approximation of a curve: one Gaussian input
// term per center, all with the same sigma, each mapped to a singleton level.
// The zero value with a sigma set is the y = x^2 system.
type SigmaConfig struct {
	Sigma   float64   `yaml:"sigma" json:"sigma"`
	Centers []float64 `yaml:"centers" json:"centers"`
	Levels  []float64 `yaml:"levels" json:"levels"`
	Names   []string  `yaml:"names" json:"names"`
	Step    float64   `yaml:"step" json:"step"`
}

func (cfg SigmaConfig) Definition() (*Definition, error) {
	if !(cfg.Sigma > 0) || math.IsInf(cfg.Sigma, 0) {
		return nil, ErrBadSigma
	}

	centers, levels, names := cfg.Centers, cfg.Levels, cfg.Names
	if len(centers) == 0 {
		centers = DefaultCenters
	}

	if len(levels) == 0 {
		levels = DefaultLevels
	}

	if len(names) == 0 {
		if len(centers) == len(DefaultNames) {
			names = DefaultNames
		} else {
			names = make([]string, len(centers))
			for idx := range names {
				names[idx] = "t" + strconv.Itoa(idx)
			}
		}
	}

	if len(centers) != len(levels) || len(centers) != len(names) {
		return nil, ErrShapeMismatch
	}

	step := cfg.Step
	if step <= 0 {
		step = DefaultStep
	}

	if err := finite(centers...); err != nil {
		return nil, err
	}

	if err := finite(levels...); err != nil {
		return nil, err
	}

	def := &Definition{
		Name: "sigma-" + strconv.FormatFloat(cfg.Sigma, 'f', -1, 64),
		Input: VariableDef{
			Name:   "x",
			Domain: spanDomain(centers, step),
		},
		Output: VariableDef{
			Name:   "y",
			Domain: spanDomain(levels, step),
		},
	}

	ls := newLevelSet()

	for idx, center := range centers {
		def.Input.Terms = append(def.Input.Terms, TermDef{
			Name:   names[idx],
			Kind:   "gaussmf",
			Params: map[string]interface{}{"mean": center, "sigma": cfg.Sigma},
		})

		def.Rules = append(def.Rules, RuleDef{
			If:   []string{names[idx]},
			Then: ls.name(levels[idx]),
		})
	}

	def.Output.Terms = ls.terms

	return def, nil
}

// levelSet hands out one singleton term per distinct level.
type levelSet struct {
	byValue map[float64]string
	used    map[string]bool
	terms   []TermDef
}

func newLevelSet() *levelSet {
	return &levelSet{
		byValue: make(map[float64]string),
		used:    make(map[string]bool),
	}
}

func (ls *levelSet) name(v float64) string {
	if name, ok := ls.byValue[v]; ok {
		return name
	}

	name := LevelName(v)
	if ls.used[name] {
		name += "_" + strconv.Itoa(len(ls.terms))
	}

	ls.byValue[v] = name
	ls.used[name] = true
	ls.terms = append(ls.terms, TermDef{
		Name:   name,
		Kind:   KindSingleton,
		Params: map[string]interface{}{"value": v},
	})

	return name
}

// LevelName names a singleton output level: 1 is level_1, 0.36 is level_036.
func LevelName(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "m")

	return "level_" + s
}

// spanDomain covers [min, max] inclusively, like arange(min, max+step, step).
func spanDomain(vs []float64, step float64) Domain {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return Domain{
		Start: lo,
		Stop:  hi + step,
		Step:  step,
	}
}

func finite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}

	return nil
}
