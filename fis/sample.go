package fis

import (
	"context"
	"errors"
	"runtime"

	"github.com/sgostarter/libfuzzy/curve"
	"github.com/sgostarter/libfuzzy/universe"
	"golang.org/x/sync/errgroup"
)

const minSamplesPerWorker = 64

// SampleCurve evaluates every x independently. Samples where no rule fires are
// returned with Defined false. Work is split across goroutines; the system is
// only read, so this is safe against concurrent callers too.
func (s *System) SampleCurve(ctx context.Context, xs []float64) ([]curve.Point, error) {
	ps := make([]curve.Point, len(xs))

	workers := runtime.GOMAXPROCS(0)
	if n := (len(xs) + minSamplesPerWorker - 1) / minSamplesPerWorker; n < workers {
		workers = n
	}

	if workers < 1 {
		return ps, nil
	}

	chunk := (len(xs) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(xs); start += chunk {
		start, end := start, start+chunk
		if end > len(xs) {
			end = len(xs)
		}

		g.Go(func() error {
			for idx := start; idx < end; idx++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				r, err := s.Evaluate(xs[idx])
				if err != nil && !errors.Is(err, ErrUndefinedOutput) {
					return err
				}

				ps[idx] = curve.Point{
					X:       xs[idx],
					Y:       r.Output,
					Defined: r.Defined,
				}

				if !r.Defined {
					ps[idx].Y = 0
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (s *System) SampleDomain(ctx context.Context, d universe.Domain) ([]curve.Point, error) {
	return s.SampleCurve(ctx, d.Points())
}
