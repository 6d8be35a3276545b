package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lielath/structure"
)

func (c *CLI) constantsCommand() *cobra.Command {
	var anti bool

	cmd := &cobra.Command{
		Use:   "constants <" + strings.Join(families, "|") + "> <d|j>",
		Short: "Print the structure constants (or d-coefficients) of a basis",
		Example: `  lielath constants gellmann 2
  lielath constants sylvester 3 --anti
  lielath constants spin 1/2 -v`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			alg, err := build(args[0], args[1], c.solverOptions(cmd)...)
			if err != nil {
				return err
			}
			tbl, label := alg.StructureConstants(), "[Ti,Tj]"
			if anti {
				tbl, label = alg.DCoefficients(), "{Ti,Tj}"
			}

			fmt.Fprintln(c.out, styleTitle.Render(alg.String()))
			fmt.Fprintln(c.out, renderCoefficients(tbl, label, c.cfg.Tolerance))

			if deg := tbl.Degenerate(); len(deg) > 0 {
				logger.Warn("some brackets decompose onto several elements; the leading term is shown",
					"pairs", len(deg))
			}
			logger.Info("done", "entries", tbl.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&anti, "anti", false, "print d-coefficients of the anticommutator instead")

	return cmd
}

// renderCoefficients lists every present pair with its leading term and the
// number of terms; degenerate rows are highlighted.
func renderCoefficients(tbl *structure.Table, label string, tol float64) string {
	pairs := tbl.Pairs()
	rows := make([][]string, 0, len(pairs))
	degenerate := make(map[int]bool)
	for r, p := range pairs {
		lead, _ := tbl.Get(p.I, p.J)
		n := len(tbl.Terms(p.I, p.J))
		if n > 1 {
			degenerate[r] = true
		}
		rows = append(rows, []string{
			strconv.Itoa(p.I),
			strconv.Itoa(p.J),
			strconv.Itoa(lead.K),
			formatComplex(lead.Value, tol),
			strconv.Itoa(n),
		})
	}

	return newTable([]string{"i", "j", "k", label, "terms"}, rows, degenerate).String()
}
