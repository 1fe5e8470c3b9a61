package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgostarter/libfuzzy/curve"
	"github.com/sgostarter/libfuzzy/fis"
	"github.com/sgostarter/libfuzzy/fis/builder"
	"github.com/sgostarter/libfuzzy/universe"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type systemFlags struct {
	sigma       float64
	defuzzifier string
	definition  string
}

func (sf *systemFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sf.sigma, "sigma", 0, "shared sigma of the Gaussian input terms (config default 0.15)")
	cmd.Flags().StringVar(&sf.defuzzifier, "defuzz", "", "weighted_average or centroid")
	cmd.Flags().StringVarP(&sf.definition, "definition", "f", "", "yaml system definition, overrides --sigma")
}

func (sf *systemFlags) resolve() (*builder.Definition, error) {
	if sf.definition != "" {
		d, err := os.ReadFile(sf.definition)
		if err != nil {
			return nil, err
		}

		return builder.ParseDefinition(d)
	}

	sigma := cfg.Sigma
	if sf.sigma != 0 {
		sigma = sf.sigma
	}

	return builder.SigmaConfig{Sigma: sigma}.Definition()
}

func (sf *systemFlags) options() []fis.Option {
	opts := []fis.Option{fis.WithLogger(logger)}

	defuzzifier := cfg.Defuzzifier
	if sf.defuzzifier != "" {
		defuzzifier = sf.defuzzifier
	}

	if defuzzifier != "" {
		opts = append(opts, fis.WithDefuzzifier(fis.Defuzzifier(defuzzifier)))
	}

	return opts
}

func (sf *systemFlags) build() (*fis.System, error) {
	def, err := sf.resolve()
	if err != nil {
		return nil, err
	}

	return builder.NewCache(cfg.CacheExpiration, logger, sf.options()...).GetOrBuild(def)
}

func fisCmd() *cobra.Command {
	var sf systemFlags

	cmd := &cobra.Command{
		Use:   "fis [x...]",
		Short: "Evaluate the y = x^2 system at each x",
		Example: "  fuzzylab fis 0.5 0.3,0.7\n" +
			"  fuzzylab fis --sigma 0.2 -- -0.09 -1",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.build()
			if err != nil {
				return err
			}

			xs, err := parseArgs(args)
			if err != nil {
				return err
			}

			return evaluateAll(cmd.OutOrStdout(), s, xs)
		},
	}

	sf.register(cmd)

	return cmd
}

func anchorsCmd() *cobra.Command {
	var (
		n    int
		pad  float64
		step float64
	)

	cmd := &cobra.Command{
		Use:   "anchors [x...]",
		Short: "Piecewise-linear variant: triangles between y = x^2 anchors",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := builder.AnchorConfig{Points: builder.SquareAnchors(n), Pad: pad, Step: step}.Definition()
			if err != nil {
				return err
			}

			s, err := builder.Build(def, fis.WithLogger(logger))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			for _, rule := range s.Rules() {
				fmt.Fprintln(w, "#", rule.Describe(s.Input().Name(), s.Output().Name()))
			}

			if len(args) > 0 {
				xs, err := parseArgs(args)
				if err != nil {
					return err
				}

				return evaluateAll(w, s, xs)
			}

			ps, err := s.SampleDomain(cmd.Context(), s.Input().Domain())
			if err != nil {
				return err
			}

			return printReport(w, curve.Compare(ps, curve.Square))
		},
	}

	cmd.Flags().IntVar(&n, "n", 5, "number of anchors over [-1, 1]")
	cmd.Flags().Float64Var(&pad, "pad", 0, "extend the input domain past the outer anchors")
	cmd.Flags().Float64Var(&step, "step", 0, "input domain step, 0 for span/100")

	return cmd
}

func curveCmd() *cobra.Command {
	var (
		sf      systemFlags
		samples int
		out     string
		key     string
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Sample the response curve over [-1, 1] and compare it with y = x^2",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.build()
			if err != nil {
				return err
			}

			if samples < 2 {
				samples = cfg.Samples
			}

			d, err := universe.Linspace(-1, 1, samples)
			if err != nil {
				return err
			}

			ps, err := s.SampleDomain(cmd.Context(), d)
			if err != nil {
				return err
			}

			if out != "" {
				if err = curve.NewCommonStorage[curve.Point](out).Save(key, ps); err != nil {
					return err
				}
			}

			return printReport(cmd.OutOrStdout(), curve.Compare(ps, curve.Square))
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVar(&samples, "samples", 0, "number of samples, config default 101")
	cmd.Flags().StringVar(&out, "out", "", "directory to save the sampled points to")
	cmd.Flags().StringVar(&key, "key", "response", "file name of the saved points")

	return cmd
}

func evaluateAll(w io.Writer, s *fis.System, xs []float64) error {
	names := make([]string, 0, len(s.Rules()))
	for _, rule := range s.Rules() {
		names = append(names, strings.Join(rule.Antecedents, "+"))
	}

	for _, x := range xs {
		r, err := s.Evaluate(x)
		if errors.Is(err, fis.ErrUndefinedOutput) {
			fmt.Fprintf(w, "%g\tundefined\n", x)

			continue
		}

		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%g\t%.6f\t(x^2 = %.6f)", x, r.Output, curve.Square(x))

		for idx, name := range names {
			fmt.Fprintf(w, "\t%s=%.4f", name, r.Strengths[idx])
		}

		fmt.Fprintln(w)
	}

	return nil
}

func printReport(w io.Writer, r curve.Report) error {
	d, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(d)

	return err
}

func parseArgs(args []string) ([]float64, error) {
	var xs []float64

	for _, arg := range args {
		vs, err := parseFloats(arg)
		if err != nil {
			return nil, err
		}

		xs = append(xs, vs...)
	}

	return xs, nil
}
