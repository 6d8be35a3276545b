package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lielath/matrix"
)

func (c *CLI) basisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basis <" + strings.Join(families, "|") + "> <d|j>",
		Short: "Print the elements of a generated basis",
		Example: `  lielath basis gellmann 3
  lielath basis spherical 3/2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			name, basis, err := generate(args[0], args[1])
			if err != nil {
				return err
			}
			if _, err := matrix.ValidateBasis(basis); err != nil {
				return err
			}
			logger.Debug("generated basis", "name", name, "size", len(basis))

			fmt.Fprintln(c.out, styleTitle.Render(fmt.Sprintf("%s; basis size: %d", name, len(basis))))
			for k, el := range basis {
				fmt.Fprintf(c.out, "\nT%d =\n", k)
				fmt.Fprintln(c.out, renderMatrix(el, c.cfg.Tolerance))
			}
			return nil
		},
	}
}

// renderMatrix draws m as a borderless grid of formatted entries.
func renderMatrix(m *matrix.Dense, tol float64) string {
	rows := make([][]string, m.Rows())
	for i := range rows {
		rows[i] = make([]string, m.Cols())
		for j := range rows[i] {
			v, _ := m.At(i, j)
			rows[i][j] = formatComplex(v, tol)
		}
	}
	return newTable(nil, rows, nil).String()
}
