package curve

import (
	"math"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

func Square(x float64) float64 {
	return x * x
}

// Sample evaluates target at every x; all points are defined.
func Sample(xs []float64, target Target) []Point {
	ps := make([]Point, 0, len(xs))

	for _, x := range xs {
		ps = append(ps, Point{
			X:       x,
			Y:       target(x),
			Defined: true,
		})
	}

	return ps
}

// XY splits defined points into parallel slices for plotting.
func XY(ps []Point) (xs, ys []float64) {
	for _, p := range ps {
		if !p.Defined {
			continue
		}

		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	return
}

// Compare measures how far the defined points are from target. Undefined points
// are counted, never scored as zero.
func Compare(ps []Point, target Target) (r Report) {
	r.Samples = len(ps)

	var sumAbs, sumSq float64

	var n int

	for _, p := range ps {
		if !p.Defined {
			r.Undefined++

			continue
		}

		e := math.Abs(p.Y - target(p.X))

		if n == 0 || e > r.MaxAbsError {
			r.MaxAbsError = e
			r.MaxAbsErrorAt = p.X
		}

		sumAbs += e
		sumSq += e * e
		n++
	}

	if n > 0 {
		r.MeanAbsError = sumAbs / float64(n)
		r.RMSE = math.Sqrt(sumSq / float64(n))
	}

	return
}

//
//
//

var _ Storage[Point] = (*CommStorage[Point])(nil)

func NewCommonStorage[POINT any](root string) *CommStorage[POINT] {
	return &CommStorage[POINT]{
		root: root,
	}
}

type CommStorage[POINT any] struct {
	root string
}

func (stg *CommStorage[POINT]) fileNameByKey(key string) string {
	return path.Join(stg.root, key+".yaml")
}

func (stg *CommStorage[POINT]) Load(key string) (ps []POINT, err error) {
	d, err := os.ReadFile(stg.fileNameByKey(key))
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &ps)

	return
}

func (stg *CommStorage[POINT]) Save(key string, ps []POINT) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(ps)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByKey(key), d, 0600)

	return
}
