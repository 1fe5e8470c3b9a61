package main

import (
	"fmt"
	"strings"

	"github.com/sgostarter/libfuzzy/fuzzyset"
	"github.com/sgostarter/libfuzzy/mf"
	"github.com/sgostarter/libfuzzy/universe"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func mfCmd() *cobra.Command {
	var (
		kind            string
		params          string
		start, stop, dx float64
		every           int
	)

	cmd := &cobra.Command{
		Use:   "mf",
		Short: "Sample one membership function over a domain",
		Example: "  fuzzylab mf --kind trimf --params 5,10,15\n" +
			"  fuzzylab mf --kind gaussmf --params 12,2 --every 10",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := mf.ParseKind(kind)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}

			ps, err := parseFloats(params)
			if err != nil {
				return err
			}

			f, err := mf.New(k, ps...)
			if err != nil {
				return err
			}

			d, err := universe.Arange(start, stop, dx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# %s %v peak=%g\n", f.Kind(), f.NamedParams(), f.Peak())

			degrees := f.Sample(d)
			for idx, v := range degrees {
				if every > 1 && idx%every != 0 && idx != len(degrees)-1 {
					continue
				}

				fmt.Fprintf(w, "%.4f\t%.6f\n", d.At(idx), v)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "trimf", "function family: "+kindList())
	cmd.Flags().StringVar(&params, "params", "5,10,15", "comma separated positional parameters")
	cmd.Flags().Float64Var(&start, "start", 0, "domain start")
	cmd.Flags().Float64Var(&stop, "stop", 25.1, "domain stop, exclusive")
	cmd.Flags().Float64Var(&dx, "step", 0.1, "domain step")
	cmd.Flags().IntVar(&every, "every", 1, "print every n-th sample")

	return cmd
}

func opsCmd() *cobra.Command {
	var (
		aMean, aSigma float64
		bMean, bSigma float64
		every         int
	)

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Intersection, union and complement of two Gaussian sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := universe.Arange(0, 20.1, 0.1)
			if err != nil {
				return err
			}

			fa, err := mf.Gaussian(aMean, aSigma)
			if err != nil {
				return err
			}

			fb, err := mf.Gaussian(bMean, bSigma)
			if err != nil {
				return err
			}

			a, b := fuzzyset.FromFunc(d, fa), fuzzyset.FromFunc(d, fb)

			and, err := fuzzyset.Intersection(a, b)
			if err != nil {
				return err
			}

			or, err := fuzzyset.Union(a, b)
			if err != nil {
				return err
			}

			notA := fuzzyset.Complement(a)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "x\tA\tB\tA and B\tA or B\tnot A")

			for idx := 0; idx < d.Len(); idx++ {
				if every > 1 && idx%every != 0 {
					continue
				}

				fmt.Fprintf(w, "%.1f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", d.At(idx),
					a.At(idx), b.At(idx), and.At(idx), or.At(idx), notA.At(idx))
			}

			x, v := and.ArgMax()
			fmt.Fprintf(w, "# max(A and B) = %.4f at x = %.1f\n", v, x)

			return nil
		},
	}

	cmd.Flags().Float64Var(&aMean, "a-mean", 12, "mean of A")
	cmd.Flags().Float64Var(&aSigma, "a-sigma", 2, "sigma of A")
	cmd.Flags().Float64Var(&bMean, "b-mean", 8, "mean of B")
	cmd.Flags().Float64Var(&bSigma, "b-sigma", 3, "sigma of B")
	cmd.Flags().IntVar(&every, "every", 10, "print every n-th sample")

	return cmd
}

func parseFloats(s string) ([]float64, error) {
	var vs []float64

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := cast.ToFloat64E(part)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func kindList() string {
	kinds := make([]string, 0, len(mf.Kinds()))
	for _, k := range mf.Kinds() {
		kinds = append(kinds, string(k))
	}

	return strings.Join(kinds, ", ")
}
