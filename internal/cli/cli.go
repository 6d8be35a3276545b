package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lielath/structure"
)

const appName = "lielath"

// version is injected at build time via ldflags.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	tolerance  float64
	workers    int

	cfg Config
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut, cfg: defaultConfig()}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lielath generates matrix Lie algebra bases and their structure constants",
		Long:         `lielath generates matrix Lie algebra bases (generalized Gell-Mann, clock-shift, spherical tensor, spin) and computes their structure constants and d-coefficients by least squares.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("tolerance") {
				cfg.Tolerance = c.tolerance
			}
			if flags.Changed("workers") {
				cfg.Workers = c.workers
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			c.cfg = cfg

			ctx := withLogger(cmd.Context(), newLogger(c.errOut, cfg.level(c.verbose)))
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	pf.Float64Var(&c.tolerance, "tolerance", c.cfg.Tolerance, "coefficients at or below this magnitude are zero")
	pf.IntVar(&c.workers, "workers", 0, "solver goroutines (0 = GOMAXPROCS)")

	root.AddCommand(c.basisCommand())
	root.AddCommand(c.constantsCommand())

	return root
}

// solverOptions translates the effective config into solver options.
func (c *CLI) solverOptions(cmd *cobra.Command) []structure.Option {
	opts := []structure.Option{
		structure.WithTolerance(c.cfg.Tolerance),
		structure.WithLogger(loggerFromContext(cmd.Context())),
	}
	if c.cfg.Workers > 0 {
		opts = append(opts, structure.WithWorkers(c.cfg.Workers))
	}
	return opts
}
