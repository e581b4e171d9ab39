// Package main provides the tangent CLI: exact derivatives, gradients, and
// Jacobians of the built-in demo functions via forward-mode AD.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/tangent-ml/tangent/deriv"
	"github.com/tangent-ml/tangent/dual"
)

const version = "v0.1.0"

var (
	at        string
	from, to  float64
	points    int
	transpose bool
	withDeriv bool
)

// scalarFns are univariate demo functions for diff and plot.
var scalarFns = map[string]struct {
	desc string
	f    deriv.Scalar
}{
	"sin": {"sin(x)", func(x dual.Number) dual.Number { return x.Sin() }},
	"gaussian": {"exp(-x²)", func(x dual.Number) dual.Number {
		return x.Mul(x).Neg().Exp()
	}},
	"logistic": {"1/(1+exp(-x))", func(x dual.Number) dual.Number {
		return dual.ScalarDiv(1, x.Neg().Exp().AddScalar(1))
	}},
	"sinc": {"sin(x)/x", func(x dual.Number) dual.Number {
		return x.Sin().Div(x)
	}},
	"expsin": {"exp(sin(x))", func(x dual.Number) dual.Number {
		return x.Sin().Exp()
	}},
}

// fieldFns are multivariate scalar fields for grad. Arity 0 means any.
var fieldFns = map[string]struct {
	desc  string
	arity int
	f     deriv.Field
}{
	"rosenbrock": {"(1-x)² + 100(y-x²)²", 2, func(x []dual.Number) dual.Number {
		a := dual.ScalarSub(1, x[0])
		b := x[1].Sub(x[0].Mul(x[0]))
		return a.Mul(a).Add(b.Mul(b).MulScalar(100))
	}},
	"himmelblau": {"(x²+y-11)² + (x+y²-7)²", 2, func(x []dual.Number) dual.Number {
		a := x[0].Mul(x[0]).Add(x[1]).SubScalar(11)
		b := x[0].Add(x[1].Mul(x[1])).SubScalar(7)
		return a.Mul(a).Add(b.Mul(b))
	}},
	"sphere": {"Σ xᵢ²", 0, func(x []dual.Number) dual.Number {
		s := dual.Zero(x[0].Dim())
		for _, xi := range x {
			s = s.Add(xi.Mul(xi))
		}
		return s
	}},
}

// mapFns are vector-valued functions for jacobian.
var mapFns = map[string]struct {
	desc  string
	arity int
	f     deriv.Map
}{
	"polar": {"(r cos θ, r sin θ)", 2, func(x []dual.Number) []dual.Number {
		return []dual.Number{x[0].Mul(x[1].Cos()), x[0].Mul(x[1].Sin())}
	}},
	"sumprod": {"(x+y, x·y)", 2, func(x []dual.Number) []dual.Number {
		return []dual.Number{x[0].Add(x[1]), x[0].Mul(x[1])}
	}},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tangent",
		Short: "forward-mode automatic differentiation playground",
	}

	diffCmd := &cobra.Command{
		Use:   "diff [function]",
		Short: "value and derivative of a univariate function",
		Args:  cobra.ExactArgs(1),
		RunE:  runDiff,
	}
	diffCmd.Flags().StringVar(&at, "at", "0", "evaluation point")

	gradCmd := &cobra.Command{
		Use:   "grad [function]",
		Short: "value and gradient of a scalar field",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrad,
	}
	gradCmd.Flags().StringVar(&at, "at", "0,0", "evaluation point, comma-separated")

	jacCmd := &cobra.Command{
		Use:   "jacobian [function]",
		Short: "values and Jacobian of a vector-valued function",
		Args:  cobra.ExactArgs(1),
		RunE:  runJacobian,
	}
	jacCmd.Flags().StringVar(&at, "at", "1,1", "evaluation point, comma-separated")
	jacCmd.Flags().BoolVar(&transpose, "transpose", false, "print the transposed Jacobian")

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "plot a univariate function and its derivative",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&from, "from", -5, "interval start")
	plotCmd.Flags().Float64Var(&to, "to", 5, "interval end")
	plotCmd.Flags().IntVar(&points, "points", 160, "sample count")
	plotCmd.Flags().BoolVar(&withDeriv, "deriv", true, "also plot the derivative")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list built-in functions",
		RunE:  runList,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tangent %s\n", version)
		},
	}

	rootCmd.AddCommand(diffCmd, gradCmd, jacCmd, plotCmd, listCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	entry, ok := scalarFns[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (try 'tangent list')", args[0])
	}
	x, err := strconv.ParseFloat(at, 64)
	if err != nil {
		return fmt.Errorf("bad --at value %q: %v", at, err)
	}

	v, d := deriv.DiffWithValue(entry.f)(x)
	fmt.Printf("f(x)  = %s\n", entry.desc)
	fmt.Printf("f(%g)  = %g\n", x, v)
	fmt.Printf("f'(%g) = %g\n", x, d)
	return nil
}

func runGrad(cmd *cobra.Command, args []string) error {
	entry, ok := fieldFns[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (try 'tangent list')", args[0])
	}
	x, err := parsePoint(at, entry.arity)
	if err != nil {
		return err
	}

	v, g := deriv.GradWithValue(entry.f)(x)
	fmt.Printf("f%v = %g\n", x, v)
	fmt.Printf("∇f%v = %v\n", x, g)
	return nil
}

func runJacobian(cmd *cobra.Command, args []string) error {
	entry, ok := mapFns[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (try 'tangent list')", args[0])
	}
	x, err := parsePoint(at, entry.arity)
	if err != nil {
		return err
	}

	driver := deriv.JacobianMatWithValue(entry.f)
	if transpose {
		driver = deriv.JacobianTMatWithValue(entry.f)
	}
	vals, jac := driver(mat.NewVecDense(len(x), x))

	fmt.Printf("f%v = %v\n", x, mat.Formatted(vals.T()))
	fmt.Printf("J =\n%v\n", mat.Formatted(jac, mat.Prefix("    ")))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	entry, ok := scalarFns[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (try 'tangent list')", args[0])
	}
	if points < 2 {
		return fmt.Errorf("need at least 2 points, got %d", points)
	}
	if to <= from {
		return fmt.Errorf("empty interval [%g, %g]", from, to)
	}

	df := deriv.DiffWithValue(entry.f)
	vals := make([]float64, points)
	derivs := make([]float64, points)
	step := (to - from) / float64(points-1)
	for i := range vals {
		vals[i], derivs[i] = df(from + float64(i)*step)
	}

	fmt.Println(asciigraph.Plot(vals,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("f(x) = %s on [%g, %g]", entry.desc, from, to)),
	))
	fmt.Println()

	if withDeriv {
		fmt.Println(asciigraph.Plot(derivs,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("f'(x)"),
		))
		fmt.Println()
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tF")
	for name, e := range scalarFns {
		fmt.Fprintf(w, "scalar\t%s\t%s\n", name, e.desc)
	}
	for name, e := range fieldFns {
		fmt.Fprintf(w, "field\t%s\t%s\n", name, e.desc)
	}
	for name, e := range mapFns {
		fmt.Fprintf(w, "map\t%s\t%s\n", name, e.desc)
	}
	return w.Flush()
}

// parsePoint parses a comma-separated coordinate list. arity 0 accepts any
// non-empty dimension.
func parsePoint(s string, arity int) ([]float64, error) {
	parts := strings.Split(s, ",")
	x := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q in --at: %v", p, err)
		}
		x = append(x, v)
	}
	if arity > 0 && len(x) != arity {
		return nil, fmt.Errorf("function takes %d coordinates, got %d", arity, len(x))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("empty evaluation point")
	}
	return x, nil
}
