package builder

import (
	"math"
	"sort"
	"strconv"
)

type Anchor struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// AnchorConfig describes the piecewise-linear variant: term i is a triangle
// peaking at anchor i and reaching zero at both neighbours, consequent i is the
// singleton y_i. Adjacent triangles sum to one, so between anchors the output is
// the linear interpolation of the two y values. Pad widens the input domain past
// the outer anchors; no rule fires there.
type AnchorConfig struct {
	Points []Anchor `yaml:"points" json:"points"`
	Step   float64  `yaml:"step" json:"step"`
	Pad    float64  `yaml:"pad" json:"pad"`
}

// SquareAnchors samples y = x^2 at n evenly spaced anchors over [-1, 1].
func SquareAnchors(n int) []Anchor {
	if n < 2 {
		n = 2
	}

	anchors := make([]Anchor, n)
	for idx := range anchors {
		x := -1 + 2*float64(idx)/float64(n-1)
		anchors[idx] = Anchor{X: x, Y: x * x}
	}

	return anchors
}

func (cfg AnchorConfig) Definition() (*Definition, error) {
	if len(cfg.Points) < 2 {
		return nil, ErrTooFewAnchors
	}

	if cfg.Pad < 0 {
		return nil, ErrNegativePad
	}

	anchors := append([]Anchor(nil), cfg.Points...)
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].X < anchors[j].X
	})

	xs := make([]float64, len(anchors))
	ys := make([]float64, len(anchors))

	for idx, a := range anchors {
		if err := finite(a.X, a.Y); err != nil {
			return nil, err
		}

		if idx > 0 && a.X == anchors[idx-1].X {
			return nil, ErrDuplicateAnchor
		}

		xs[idx], ys[idx] = a.X, a.Y
	}

	if err := finite(cfg.Pad, cfg.Step); err != nil {
		return nil, err
	}

	lo, hi := xs[0], xs[len(xs)-1]

	step := cfg.Step
	if step <= 0 {
		step = (hi - lo) / 100
	}

	def := &Definition{
		Name: "anchors-" + strconv.Itoa(len(anchors)),
		Input: VariableDef{
			Name:   "x",
			Domain: Domain{Points: anchorGrid(xs, step, cfg.Pad)},
		},
		Output: VariableDef{
			Name:   "y",
			Domain: spanDomain(ys, levelStep(ys)),
		},
	}

	ls := newLevelSet()

	for idx := range anchors {
		left, right := xs[idx], xs[idx]
		if idx > 0 {
			left = xs[idx-1]
		}

		if idx < len(xs)-1 {
			right = xs[idx+1]
		}

		name := "a" + strconv.Itoa(idx)

		def.Input.Terms = append(def.Input.Terms, TermDef{
			Name:   name,
			Kind:   "trimf",
			Params: map[string]interface{}{"a": left, "b": xs[idx], "c": right},
		})

		def.Rules = append(def.Rules, RuleDef{
			If:   []string{name},
			Then: ls.name(ys[idx]),
		})
	}

	def.Output.Terms = ls.terms

	return def, nil
}

// anchorGrid samples [lo-pad, hi+pad] with every anchor x as an exact node, so
// each triangle reaches 1 on its own anchor and 0 on its neighbours. Gaps are
// split evenly into at most step-wide pieces.
func anchorGrid(xs []float64, step, pad float64) []float64 {
	pieces := func(width float64) int {
		n := int(math.Ceil(width/step - 1e-9))
		if n < 1 {
			n = 1
		}

		return n
	}

	var points []float64

	lo, hi := xs[0], xs[len(xs)-1]

	if pad > 0 {
		n := pieces(pad)
		for k := 0; k < n; k++ {
			points = append(points, lo-pad+pad*float64(k)/float64(n))
		}
	}

	for idx := 0; idx < len(xs)-1; idx++ {
		left, right := xs[idx], xs[idx+1]

		n := pieces(right - left)
		for k := 0; k < n; k++ {
			points = append(points, left+(right-left)*float64(k)/float64(n))
		}
	}

	points = append(points, hi)

	if pad > 0 {
		n := pieces(pad)
		for k := 1; k < n; k++ {
			points = append(points, hi+pad*float64(k)/float64(n))
		}

		points = append(points, hi+pad)
	}

	return points
}

func levelStep(ys []float64) float64 {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	if hi-lo <= 0 {
		return DefaultStep
	}

	return (hi - lo) / 100
}
