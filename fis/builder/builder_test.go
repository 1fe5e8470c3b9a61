package builder

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfuzzy/fis"
	"github.com/sgostarter/libfuzzy/mf"
	"github.com/sgostarter/libfuzzy/variable"
	"github.com/stretchr/testify/assert"
)

const yamlDefinition = `
name: ramp
input:
  name: in
  domain: {start: 0, stop: 10.5, step: 0.5}
  terms:
    - {name: lo, kind: triangular, params: {a: 0, b: 0, c: "10"}}
    - {name: hi, kind: trimf, params: {a: 0, b: 10, c: 10}}
output:
  name: out
  domain: {start: 0, stop: 10.5, step: 0.5}
  terms:
    - {name: two, kind: singleton, params: {value: 2}}
    - {name: eight, kind: singleton, params: {value: 8}}
rules:
  - {if: [lo], then: two}
  - {if: [hi], connective: or, then: eight}
defuzzifier: weighted_average
`

func TestLevelName(t *testing.T) {
	assert.EqualValues(t, "level_1", LevelName(1))
	assert.EqualValues(t, "level_036", LevelName(0.36))
	assert.EqualValues(t, "level_0", LevelName(0))
	assert.EqualValues(t, "level_016", LevelName(0.16))
	assert.EqualValues(t, "level_m05", LevelName(-0.5))
}

func TestSigmaDefinition(t *testing.T) {
	def, err := SigmaConfig{Sigma: DefaultSigma}.Definition()
	assert.Nil(t, err)
	assert.EqualValues(t, 5, len(def.Input.Terms))
	assert.EqualValues(t, 4, len(def.Output.Terms))
	assert.EqualValues(t, 5, len(def.Rules))
	assert.EqualValues(t, "level_1", def.Rules[0].Then)
	assert.EqualValues(t, "level_1", def.Rules[4].Then)
	assert.EqualValues(t, "level_036", def.Rules[1].Then)

	s, err := Build(def)
	assert.Nil(t, err)
	assert.EqualValues(t, 201, s.Input().Domain().Len())
	assert.EqualValues(t, 101, s.Output().Domain().Len())
	assert.EqualValues(t, []string{"bn", "n", "z", "p", "pb"}, s.Input().TermNames())

	r, err := s.Evaluate(-0.09)
	assert.Nil(t, err)
	assert.True(t, r.Output > 0)
	assert.True(t, r.Output < 0.36)

	term, ok := s.Input().Term("p")
	assert.True(t, ok)
	assert.EqualValues(t, mf.KindGaussian, term.Func().Kind())
	assert.EqualValues(t, []float64{0.4, 0.15}, term.Func().Params())
}

func TestSigmaDefinitionRejects(t *testing.T) {
	for _, sigma := range []float64{0, -0.1} {
		_, err := SigmaConfig{Sigma: sigma}.Definition()
		assert.True(t, errors.Is(err, ErrBadSigma))
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	}

	_, err := SigmaConfig{Sigma: 0.1, Levels: []float64{1, 2}}.Definition()
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	def, err := SigmaConfig{Sigma: 0.3, Centers: []float64{0, 1, 2}, Levels: []float64{0, 1, 4}}.Definition()
	assert.Nil(t, err)
	assert.EqualValues(t, "t2", def.Input.Terms[2].Name)
}

func TestBuildFromYAML(t *testing.T) {
	def, err := ParseDefinition([]byte(yamlDefinition))
	assert.Nil(t, err)

	s, err := Build(def, fis.WithDefuzzifier(fis.Centroid))
	assert.Nil(t, err)
	assert.EqualValues(t, fis.WeightedAverage, s.Defuzzifier())
	assert.EqualValues(t, fis.Or, s.Rules()[1].Connective)

	r, err := s.Evaluate(2.5)
	assert.Nil(t, err)
	assert.InDelta(t, 3.5, r.Output, 1e-12)

	d, err := def.Marshal()
	assert.Nil(t, err)

	again, err := ParseDefinition(d)
	assert.Nil(t, err)

	k1, err := Key(def)
	assert.Nil(t, err)

	k2, err := Key(again)
	assert.Nil(t, err)
	assert.EqualValues(t, k1, k2)
}

func TestBuildRejects(t *testing.T) {
	_, err := Build(nil)
	assert.True(t, errors.Is(err, ErrNoDefinition))

	def, err := ParseDefinition([]byte(yamlDefinition))
	assert.Nil(t, err)

	def.Input.Terms[0].Kind = "wave"
	_, err = Build(def)
	assert.True(t, errors.Is(err, mf.ErrUnknownKind))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Input.Terms[0].Params["b"] = 20
	_, err = Build(def)
	assert.True(t, errors.Is(err, mf.ErrParameterOrder))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Rules[0].Then = "three"
	_, err = Build(def)
	assert.True(t, errors.Is(err, variable.ErrUnknownTerm))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Rules[0].Connective = "xor"
	_, err = Build(def)
	assert.True(t, errors.Is(err, fis.ErrUnknownConnective))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Output.Terms[0].Params["other"] = 1
	_, err = Build(def)
	assert.True(t, errors.Is(err, ErrSingletonParams))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Input.Domain.Step = 0
	_, err = Build(def)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	def, _ = ParseDefinition([]byte(yamlDefinition))
	def.Defuzzifier = "mom"
	_, err = Build(def)
	assert.True(t, errors.Is(err, fis.ErrUnknownDefuzzifier))
}

func TestTermFromFunc(t *testing.T) {
	g, err := mf.Gaussian(12, 2)
	assert.Nil(t, err)

	td := TermFromFunc("a", g)
	assert.EqualValues(t, "gaussmf", td.Kind)

	f, err := buildFunc(td)
	assert.Nil(t, err)
	assert.EqualValues(t, g.Params(), f.Params())

	one, err := mf.Singleton(0.36)
	assert.Nil(t, err)

	td = TermFromFunc("l", one)
	assert.EqualValues(t, KindSingleton, td.Kind)

	f, err = buildFunc(td)
	assert.Nil(t, err)
	assert.True(t, f.IsSingleton())
	assert.EqualValues(t, 0.36, f.Peak())
}

func TestAnchorInterpolates(t *testing.T) {
	def, err := AnchorConfig{Points: SquareAnchors(5)}.Definition()
	assert.Nil(t, err)
	assert.EqualValues(t, 3, len(def.Output.Terms))

	s, err := Build(def)
	assert.Nil(t, err)

	for _, c := range []struct {
		x, y float64
	}{
		{-0.75, 0.625},
		{-0.5, 0.25},
		{0, 0},
		{0.25, 0.125},
		{0.6, 0.4},
	} {
		r, err := s.Evaluate(c.x)
		assert.Nil(t, err)
		assert.InDelta(t, c.y, r.Output, 1e-9)
	}
}

func TestAnchorPadded(t *testing.T) {
	def, err := AnchorConfig{Points: SquareAnchors(5), Pad: 0.2}.Definition()
	assert.Nil(t, err)

	s, err := Build(def)
	assert.Nil(t, err)

	r, err := s.Evaluate(-1.1)
	assert.True(t, errors.Is(err, fis.ErrUndefinedOutput))
	assert.False(t, r.Defined)

	_, err = s.Evaluate(1.15)
	assert.True(t, errors.Is(err, fis.ErrUndefinedOutput))

	r, err = s.Evaluate(-0.75)
	assert.Nil(t, err)
	assert.InDelta(t, 0.625, r.Output, 1e-9)
}

func TestAnchorRejects(t *testing.T) {
	_, err := AnchorConfig{Points: []Anchor{{X: 1, Y: 1}}}.Definition()
	assert.True(t, errors.Is(err, ErrTooFewAnchors))

	_, err = AnchorConfig{Points: []Anchor{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 2}}}.Definition()
	assert.True(t, errors.Is(err, ErrDuplicateAnchor))

	_, err = AnchorConfig{Points: SquareAnchors(3), Pad: -1}.Definition()
	assert.True(t, errors.Is(err, ErrNegativePad))

	// unsorted input is accepted and sorted
	def, err := AnchorConfig{Points: []Anchor{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 0}}}.Definition()
	assert.Nil(t, err)
	assert.EqualValues(t, -1.0, def.Input.Terms[0].Params["b"])
}

func TestAnchorsAreSampleNodes(t *testing.T) {
	uneven := []Anchor{{X: 0.3, Y: 0.09}, {X: 0.5, Y: 0.25}, {X: 0.9, Y: 0.81}}

	for _, cfg := range []AnchorConfig{
		{Points: uneven},
		{Points: uneven, Pad: 0.1},
		{Points: uneven, Step: 0.07},
		{Points: SquareAnchors(7)},
		{Points: SquareAnchors(7), Pad: 0.2},
	} {
		def, err := cfg.Definition()
		assert.Nil(t, err)

		s, err := Build(def)
		assert.Nil(t, err)

		d := s.Input().Domain()

		for idx, a := range cfg.Points {
			r, err := s.Evaluate(a.X)
			assert.Nil(t, err)
			assert.InDelta(t, a.Y, r.Output, 1e-9)

			if idx == 0 {
				continue
			}

			prev := cfg.Points[idx-1]

			r, err = s.Evaluate((prev.X + a.X) / 2)
			assert.Nil(t, err)
			assert.InDelta(t, (prev.Y+a.Y)/2, r.Output, 1e-9)
		}

		assert.InDelta(t, cfg.Points[0].X-cfg.Pad, d.Min(), 1e-12)
		assert.EqualValues(t, cfg.Points[len(cfg.Points)-1].X+cfg.Pad, d.Max())
	}
}

func TestExplicitDomainPoints(t *testing.T) {
	def, err := AnchorConfig{Points: []Anchor{{X: 0.3, Y: 0.09}, {X: 0.5, Y: 0.25}, {X: 0.9, Y: 0.81}}}.Definition()
	assert.Nil(t, err)

	d, err := def.Marshal()
	assert.Nil(t, err)
	assert.Contains(t, string(d), "points:")

	parsed, err := ParseDefinition(d)
	assert.Nil(t, err)
	assert.EqualValues(t, def.Input.Domain.Points, parsed.Input.Domain.Points)

	s, err := Build(parsed)
	assert.Nil(t, err)

	r, err := s.Evaluate(0.5)
	assert.Nil(t, err)
	assert.InDelta(t, 0.25, r.Output, 1e-9)

	_, err = Domain{Points: []float64{0, 1, 1}}.Universe()
	assert.NotNil(t, err)
}

func TestClone(t *testing.T) {
	def, err := AnchorConfig{Points: SquareAnchors(3)}.Definition()
	assert.Nil(t, err)

	cp := def.Clone()
	assert.EqualValues(t, def, cp)

	cp.Input.Terms[0].Params["b"] = 42.0
	cp.Input.Domain.Points[0] = -42
	cp.Rules[0].If[0] = "nope"
	cp.Output.Terms[0].Name = "renamed"

	assert.EqualValues(t, -1.0, def.Input.Terms[0].Params["b"])
	assert.EqualValues(t, -1.0, def.Input.Domain.Points[0])
	assert.EqualValues(t, "a0", def.Rules[0].If[0])
	assert.NotEqual(t, "renamed", def.Output.Terms[0].Name)

	var none *Definition
	assert.Nil(t, none.Clone())
}

func TestCache(t *testing.T) {
	c := NewCache(time.Minute, l.NewConsoleLoggerWrapper())

	def, err := SigmaConfig{Sigma: 0.15}.Definition()
	assert.Nil(t, err)

	s1, err := c.GetOrBuild(def)
	assert.Nil(t, err)

	same, err := SigmaConfig{Sigma: 0.15}.Definition()
	assert.Nil(t, err)

	s2, err := c.GetOrBuild(same)
	assert.Nil(t, err)
	assert.True(t, s1 == s2)
	assert.EqualValues(t, 1, c.Len())

	other, err := SigmaConfig{Sigma: 0.2}.Definition()
	assert.Nil(t, err)

	s3, err := c.GetOrBuild(other)
	assert.Nil(t, err)
	assert.False(t, s1 == s3)
	assert.NotEqual(t, s1.ID(), s3.ID())
	assert.EqualValues(t, 2, c.Len())

	c.Flush()
	assert.EqualValues(t, 0, c.Len())

	_, err = c.GetOrBuild(nil)
	assert.True(t, errors.Is(err, ErrNoDefinition))
}

func TestCacheKeyNormalisesValues(t *testing.T) {
	d1, err := ParseDefinition([]byte(yamlDefinition))
	assert.Nil(t, err)

	d2, err := ParseDefinition([]byte(yamlDefinition))
	assert.Nil(t, err)

	d2.Input.Terms[0].Params["c"] = 10.0
	d2.Rules[0].Connective = "AND"

	k1, err := Key(d1)
	assert.Nil(t, err)

	k2, err := Key(d2)
	assert.Nil(t, err)
	assert.EqualValues(t, k1, k2)

	d2.Input.Terms[0].Params["c"] = 9.5

	k3, err := Key(d2)
	assert.Nil(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(0, nil)

	def, err := AnchorConfig{Points: SquareAnchors(9)}.Definition()
	assert.Nil(t, err)

	systems := make([]*fis.System, 16)

	var wg sync.WaitGroup

	for idx := range systems {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			systems[idx], _ = c.GetOrBuild(def)
		}(idx)
	}

	wg.Wait()

	first, err := c.GetOrBuild(def)
	assert.Nil(t, err)

	for _, s := range systems {
		assert.True(t, s == first)
	}
}
