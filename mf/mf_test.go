package mf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfuzzy/universe"
	"github.com/stretchr/testify/assert"
)

func TestTriangularScenario(t *testing.T) {
	f, err := Triangular(5, 10, 15)
	assert.Nil(t, err)

	d := universe.MustArange(0, 25.1, 0.1)
	ys := f.Sample(d)
	assert.EqualValues(t, d.Len(), len(ys))

	peakSeen := false

	for idx, y := range ys {
		x := d.At(idx)

		assert.True(t, y >= 0 && y <= 1)

		if math.Abs(x-10) < 1e-9 {
			peakSeen = true

			assert.InDelta(t, 1.0, y, 1e-9)
		}

		if x <= 5+1e-9 || x >= 15-1e-9 {
			assert.InDelta(t, 0.0, y, 1e-9)
		}
	}

	assert.True(t, peakSeen)
	assert.EqualValues(t, 1.0, f.Degree(10))
	assert.EqualValues(t, 0.0, f.Degree(5))
	assert.EqualValues(t, 0.0, f.Degree(15))
	assert.InDelta(t, 0.5, f.Degree(7.5), 1e-12)
	assert.InDelta(t, 0.5, f.Degree(12.5), 1e-12)
}

func TestTriangularRejectsOrder(t *testing.T) {
	_, err := Triangular(10, 5, 15)
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrParameterOrder))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	var pe *ParameterError
	assert.True(t, errors.As(err, &pe))
	assert.EqualValues(t, KindTriangular, pe.Kind)
	assert.EqualValues(t, "a <= b", pe.Constraint)

	_, err = Triangular(1, 5, 4)
	assert.True(t, errors.As(err, &pe))
	assert.EqualValues(t, "b <= c", pe.Constraint)
}

func TestTriangularProperties(t *testing.T) {
	// nolint: gosec
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		ps := []float64{r.Float64()*20 - 10, r.Float64()*20 - 10, r.Float64()*20 - 10}
		sortFloats(ps)

		f, err := Triangular(ps[0], ps[1], ps[2])
		assert.Nil(t, err)

		assert.EqualValues(t, 1.0, f.Degree(ps[1]))

		if ps[0] < ps[1] {
			assert.EqualValues(t, 0.0, f.Degree(ps[0]))
		}

		if ps[1] < ps[2] {
			assert.EqualValues(t, 0.0, f.Degree(ps[2]))
		}

		assert.EqualValues(t, 0.0, f.Degree(ps[0]-1))
		assert.EqualValues(t, 0.0, f.Degree(ps[2]+1))

		prev := -1.0

		for x := ps[0]; x <= ps[1]; x += 0.05 {
			y := f.Degree(x)
			assert.True(t, y >= prev)
			assert.True(t, y >= 0 && y <= 1)
			prev = y
		}

		prev = 2.0

		for x := ps[1]; x <= ps[2]; x += 0.05 {
			y := f.Degree(x)
			assert.True(t, y <= prev)
			assert.True(t, y >= 0 && y <= 1)
			prev = y
		}
	}
}

func TestSingleton(t *testing.T) {
	f, err := Singleton(0.36)
	assert.Nil(t, err)
	assert.True(t, f.IsSingleton())
	assert.EqualValues(t, 1, f.Degree(0.36))
	assert.EqualValues(t, 0, f.Degree(0.35))
	assert.EqualValues(t, 0, f.Degree(0.37))
	assert.EqualValues(t, 0.36, f.Peak())
}

func TestTrapezoidal(t *testing.T) {
	f, err := Trapezoidal(3, 8, 15, 22)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, f.Degree(3))
	assert.EqualValues(t, 1, f.Degree(8))
	assert.EqualValues(t, 1, f.Degree(12))
	assert.EqualValues(t, 1, f.Degree(15))
	assert.EqualValues(t, 0, f.Degree(22))
	assert.InDelta(t, 0.5, f.Degree(5.5), 1e-12)
	assert.InDelta(t, 0.5, f.Degree(18.5), 1e-12)
	assert.EqualValues(t, 11.5, f.Peak())

	_, err = Trapezoidal(3, 16, 15, 22)
	assert.True(t, errors.Is(err, ErrParameterOrder))

	_, err = Trapezoidal(3, 8, 23, 22)

	var pe *ParameterError
	assert.True(t, errors.As(err, &pe))
	assert.EqualValues(t, "c <= d", pe.Constraint)
}

func TestGaussian(t *testing.T) {
	f, err := Gaussian(12, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, f.Degree(12))
	assert.InDelta(t, math.Exp(-0.5), f.Degree(14), 1e-12)
	assert.InDelta(t, f.Degree(10), f.Degree(14), 1e-12)

	_, err = Gaussian(12, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.False(t, errors.Is(err, ErrParameterOrder))
}

func TestGeneralizedBell(t *testing.T) {
	f, err := GeneralizedBell(2, 4, 12)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, f.Degree(12))
	assert.InDelta(t, 0.5, f.Degree(14), 1e-12)
	assert.InDelta(t, 0.5, f.Degree(10), 1e-12)

	_, err = GeneralizedBell(0, 4, 12)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSigmoid(t *testing.T) {
	f, err := Sigmoid(12, 1)
	assert.Nil(t, err)
	assert.InDelta(t, 0.5, f.Degree(12), 1e-12)
	assert.True(t, f.Degree(20) > 0.99)
	assert.True(t, f.Degree(4) < 0.01)

	f, err = Sigmoid(12, -1)
	assert.Nil(t, err)
	assert.True(t, f.Degree(20) < 0.01)

	f, err = Sigmoid(12, 0)
	assert.Nil(t, err)

	for _, x := range []float64{-100, 0, 12, 1000} {
		assert.EqualValues(t, 0.5, f.Degree(x))
	}

	f, err = Sigmoid(0, 10)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, f.Degree(-1e6))
	assert.EqualValues(t, 1, f.Degree(1e6))
}

func TestZSShaped(t *testing.T) {
	s, err := SShaped(5, 15)
	assert.Nil(t, err)

	z, err := ZShaped(5, 15)
	assert.Nil(t, err)

	assert.EqualValues(t, 0, s.Degree(5))
	assert.EqualValues(t, 1, s.Degree(15))
	assert.InDelta(t, 0.5, s.Degree(10), 1e-12)
	assert.InDelta(t, 0.125, s.Degree(7.5), 1e-12)
	assert.InDelta(t, 0.875, s.Degree(12.5), 1e-12)

	d := universe.MustArange(0, 25.1, 0.1)
	sv := s.Sample(d)
	zv := z.Sample(d)

	for idx := range sv {
		assert.InDelta(t, 1.0, sv[idx]+zv[idx], 1e-12)

		if idx > 0 {
			assert.True(t, sv[idx] >= sv[idx-1])
			assert.True(t, zv[idx] <= zv[idx-1])
		}
	}

	step, err := SShaped(5, 5)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, step.Degree(4.9))
	assert.EqualValues(t, 1, step.Degree(5))

	_, err = ZShaped(15, 5)
	assert.True(t, errors.Is(err, ErrParameterOrder))
}

func TestNewValidation(t *testing.T) {
	_, err := New("nope", 1)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = New(KindTriangular, 1, 2)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = New(KindTriangular, 1, math.NaN(), 3)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	var zero Func
	assert.True(t, zero.IsZero())
	assert.EqualValues(t, 0, zero.Degree(1))
}

func TestFromParams(t *testing.T) {
	f, err := FromParams(KindTriangular, map[string]interface{}{
		"a": 5,
		"b": "10",
		"c": float32(15),
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []float64{5, 10, 15}, f.Params())
	assert.EqualValues(t, map[string]float64{"a": 5, "b": 10, "c": 15}, f.NamedParams())

	_, err = FromParams(KindGaussian, map[string]interface{}{"mean": 1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = FromParams(KindGaussian, map[string]interface{}{"mean": 1, "sigma": "wide"})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = FromParams(KindTriangular, map[string]interface{}{"a": 10, "b": 5, "c": 15})
	assert.True(t, errors.Is(err, ErrParameterOrder))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("trimf")
	assert.Nil(t, err)
	assert.EqualValues(t, KindTriangular, kind)

	kind, err = ParseKind(" Gaussian ")
	assert.Nil(t, err)
	assert.EqualValues(t, KindGaussian, kind)

	_, err = ParseKind("cubic")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	assert.EqualValues(t, []string{"mean", "sigma"}, ParamNames(KindGaussian))
	assert.EqualValues(t, 7, len(Kinds()))
}

func TestZero(t *testing.T) {
	d := universe.MustArange(0, 1, 0.25)
	assert.EqualValues(t, []float64{0, 0, 0, 0}, Zero(d))
}

func sortFloats(vs []float64) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j] < vs[j-1]; j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
}
