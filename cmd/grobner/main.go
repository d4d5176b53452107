// Command grobner is the CLI dispatcher for the grobner package: one
// subcommand per operation (elementary reduction, full reduction,
// S-polynomial, Buchberger closure, autoreduction, minimum basis), reading
// polynomials/systems from stdin in the TeX-like surface syntax and
// printing results with the same printer.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdr400/grobner"
	"github.com/fdr400/grobner/field"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "grobner",
		Short: "Compute Gröbner bases of polynomial ideals",
		Long: "grobner reads polynomials and polynomial systems written in a LaTeX-like\n" +
			"notation (no whitespace within a polynomial, variables as x_{n}^{k}) and\n" +
			"performs one of several Gröbner-basis operations on them.",
		// An unknown or missing mode falls back to the mode listing and a
		// zero exit status. ArbitraryArgs plus a root Run makes cobra route
		// unrecognized names here instead of failing.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "unknown mode %q\n", args[0])
			}
			return printModes(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().String("order", "lex", "monomial ordering: lex, grlex, grevlex, or invlex")
	root.PersistentFlags().String("vars-order", "", "comma-separated permutation of variable ids, e.g. 3,1,2")
	root.PersistentFlags().String("field", "rational", "coefficient field: rational, float, or modular")
	root.PersistentFlags().Int64("base", 2, "prime modulus for the modular field")
	root.PersistentFlags().String("optimization", "default", "Buchberger variant: default, do-not-repeat, skip-coprime, or lcm-criterion")

	root.AddCommand(
		newModeCmd("elementary-reduction", "Reduce one polynomial by another", runElementaryReduction),
		newModeCmd("reduce", "Fully reduce a polynomial against a system", runReduce),
		newModeCmd("s-polynomial", "Compute the S-polynomial of two polynomials", runSPolynomial),
		newModeCmd("buchberger", "Compute a Gröbner basis of a system", runBuchberger),
		newModeCmd("autoreduce", "Autoreduce a system of polynomials", runAutoreduce),
		newModeCmd("minimum-basis", "Compute the reduced Gröbner basis of a system", runMinimumBasis),
		newModesCmd(),
		newOptimizationsCmd(),
	)
	return root
}

type modeFunc func(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, field string, base int64) error

func newModeCmd(use, short string, run modeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			orderName, _ := cmd.Flags().GetString("order")
			varsOrder, _ := cmd.Flags().GetString("vars-order")
			fieldName, _ := cmd.Flags().GetString("field")
			base, _ := cmd.Flags().GetInt64("base")
			optName, _ := cmd.Flags().GetString("optimization")

			ctx, err := buildContext(orderName, varsOrder)
			if err != nil {
				return err
			}
			variant, err := grobner.VariantByName(optName)
			if err != nil {
				return err
			}

			r := bufio.NewReader(cmd.InOrStdin())
			return run(cmd.OutOrStdout(), r, ctx, variant, fieldName, base)
		},
	}
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printModes(cmd.OutOrStdout())
		},
	}
}

func printModes(w io.Writer) error {
	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w, "  elementary-reduction  reduce one polynomial by another, a single step")
	fmt.Fprintln(w, "  reduce                fully reduce a polynomial against a system")
	fmt.Fprintln(w, "  s-polynomial          compute the S-polynomial of two polynomials")
	fmt.Fprintln(w, "  buchberger            compute a Gröbner basis of a system")
	fmt.Fprintln(w, "  autoreduce            autoreduce a system of polynomials")
	fmt.Fprintln(w, "  minimum-basis         compute the reduced Gröbner basis of a system")
	return nil
}

func newOptimizationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimizations",
		Short: "List the available Buchberger variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Available Buchberger variants:")
			fmt.Fprintln(w, "  default        recompute every pair's S-polynomial each round")
			fmt.Fprintln(w, "  do-not-repeat  process every pair at most once, off a queue")
			fmt.Fprintln(w, "  skip-coprime   do-not-repeat, plus skip pairs with coprime leaders")
			fmt.Fprintln(w, "  lcm-criterion  skip-coprime, plus Buchberger's second criterion")
			return nil
		},
	}
}

func buildContext(orderName, varsOrder string) (grobner.Context, error) {
	vo, err := parseVarsOrder(varsOrder)
	if err != nil {
		return grobner.Context{}, err
	}
	ord, err := grobner.OrderByName(orderName, vo)
	if err != nil {
		return grobner.Context{}, err
	}
	return grobner.Context{Vars: vo, Order: ord}, nil
}

func parseVarsOrder(s string) (*grobner.VariableOrder, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]grobner.Variable, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid --vars-order entry %q: %w", part, err)
		}
		ids = append(ids, grobner.Variable(n))
	}
	return grobner.NewVariableOrder(ids), nil
}

// readLine reads and trims one newline-terminated line, tolerating a final
// line with no trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPolynomial[K grobner.Field[K]](w io.Writer, r *bufio.Reader, witness K, ctx grobner.Context, prompt string) (grobner.Polynomial[K], error) {
	fmt.Fprintln(w, prompt)
	line, err := readLine(r)
	if err != nil {
		return grobner.Polynomial[K]{}, err
	}
	return grobner.ParsePolynomial(ctx, witness, line)
}

func readSystem[K grobner.Field[K]](w io.Writer, r *bufio.Reader, witness K, ctx grobner.Context, variant grobner.Variant, prompt string) (*grobner.Set[K], error) {
	fmt.Fprintln(w, prompt)
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	return grobner.ParseSystem(ctx, witness, variant, line)
}

func runElementaryReduction(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return elementaryReduction(field.NewRational(0, 1), w, r, ctx) },
		func() error { return elementaryReduction(field.Float(0), w, r, ctx) },
		func() error { return elementaryReduction(field.NewModular(base, 0), w, r, ctx) })
}

func elementaryReduction[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context) error {
	p1, err := readPolynomial(w, r, witness, ctx, "Enter the polynomial to reduce:")
	if err != nil {
		return err
	}
	p2, err := readPolynomial(w, r, witness, ctx, "Enter the polynomial to reduce by:")
	if err != nil {
		return err
	}
	result, ok := p1.ReduceBy(p2)
	if !ok {
		fmt.Fprintln(w, "Not reducible by the given polynomial.")
		return nil
	}
	fmt.Fprintf(w, "Result: %s\n", result)
	return nil
}

func runReduce(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return reduce(field.NewRational(0, 1), w, r, ctx, variant) },
		func() error { return reduce(field.Float(0), w, r, ctx, variant) },
		func() error { return reduce(field.NewModular(base, 0), w, r, ctx, variant) })
}

func reduce[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant) error {
	p, err := readPolynomial(w, r, witness, ctx, "Enter the polynomial to reduce:")
	if err != nil {
		return err
	}
	set, err := readSystem(w, r, witness, ctx, variant, "Enter the system to reduce against:")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Result: %s\n", set.NormalForm(p))
	return nil
}

func runSPolynomial(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return sPolynomial(field.NewRational(0, 1), w, r, ctx) },
		func() error { return sPolynomial(field.Float(0), w, r, ctx) },
		func() error { return sPolynomial(field.NewModular(base, 0), w, r, ctx) })
}

func sPolynomial[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context) error {
	p1, err := readPolynomial(w, r, witness, ctx, "Enter the first polynomial:")
	if err != nil {
		return err
	}
	p2, err := readPolynomial(w, r, witness, ctx, "Enter the second polynomial:")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Result: %s\n", grobner.SPolynomial(p1, p2))
	return nil
}

func runBuchberger(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return buchberger(field.NewRational(0, 1), w, r, ctx, variant) },
		func() error { return buchberger(field.Float(0), w, r, ctx, variant) },
		func() error { return buchberger(field.NewModular(base, 0), w, r, ctx, variant) })
}

func buchberger[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant) error {
	set, err := readSystem(w, r, witness, ctx, variant, "Enter the system to compute a Gröbner basis of:")
	if err != nil {
		return err
	}
	set.Buchberger()
	fmt.Fprintf(w, "Result: %s\n", set)
	return nil
}

func runAutoreduce(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return autoreduce(field.NewRational(0, 1), w, r, ctx, variant) },
		func() error { return autoreduce(field.Float(0), w, r, ctx, variant) },
		func() error { return autoreduce(field.NewModular(base, 0), w, r, ctx, variant) })
}

func autoreduce[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant) error {
	set, err := readSystem(w, r, witness, ctx, variant, "Enter the system to autoreduce:")
	if err != nil {
		return err
	}
	set.Autoreduce()
	fmt.Fprintf(w, "Result: %s\n", set)
	return nil
}

func runMinimumBasis(w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant, fieldName string, base int64) error {
	return withField(fieldName, base, func() error { return minimumBasis(field.NewRational(0, 1), w, r, ctx, variant) },
		func() error { return minimumBasis(field.Float(0), w, r, ctx, variant) },
		func() error { return minimumBasis(field.NewModular(base, 0), w, r, ctx, variant) })
}

func minimumBasis[K grobner.Field[K]](witness K, w io.Writer, r *bufio.Reader, ctx grobner.Context, variant grobner.Variant) error {
	set, err := readSystem(w, r, witness, ctx, variant, "Enter the system to compute a minimum basis of:")
	if err != nil {
		return err
	}
	set.MinimumBasis()
	fmt.Fprintf(w, "Result: %s\n", set)
	return nil
}

// withField dispatches to the rational/float/modular instantiation named
// by fieldName. Go generics are resolved at compile time, so the three
// instantiations of every mode already exist in one binary; this just
// picks which one to call at runtime.
func withField(fieldName string, base int64, rational, float, modular func() error) error {
	switch fieldName {
	case "rational":
		return rational()
	case "float":
		return float()
	case "modular":
		return modular()
	default:
		return fmt.Errorf("unknown field %q (want rational, float, or modular)", fieldName)
	}
}
