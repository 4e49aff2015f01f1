// Command realtype classifies values written as literals, JSON or YAML.
//
// Usage:
//
//	realtype classify '[1, 2]' 'new String("x")' NaN
//	realtype count --format yaml --file values.yaml
//	echo '[true, null, {}]' | realtype unique --format json --file -
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bearlytools/realtype"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	verbose bool
	format  string
	file    string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "realtype",
		Short: "Classify values by their real type",
		Long: `realtype resolves values to their real type: "array" rather than "object"
for a list, "NaN" rather than "number" for not-a-number, "string" for a boxed string.

Values come from the arguments, one or more per argument, or from --file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatLiteral, "Input format: literal, json or yaml")
	root.PersistentFlags().StringVar(&a.file, "file", "", "Read values from this file instead of the arguments, - for stdin")

	root.AddCommand(
		&cobra.Command{
			Use:   "classify [values...]",
			Short: "Print the real type of each value",
			RunE:  a.run(printTags),
		},
		&cobra.Command{
			Use:   "shallow [values...]",
			Short: "Print the shallow type of each value",
			RunE:  a.run(printShallow),
		},
		&cobra.Command{
			Use:   "same [values...]",
			Short: "Print true if all values have the same shallow type",
			RunE: a.run(func(w io.Writer, values []any) error {
				_, err := fmt.Fprintln(w, strconv.FormatBool(realtype.AllSameShallowType(values)))
				return err
			}),
		},
		&cobra.Command{
			Use:   "unique [values...]",
			Short: "Print true if no two values have the same real type",
			RunE: a.run(func(w io.Writer, values []any) error {
				_, err := fmt.Fprintln(w, strconv.FormatBool(realtype.AllUniqueTypes(values)))
				return err
			}),
		},
		&cobra.Command{
			Use:   "count [values...]",
			Short: "Print how many values have each real type",
			RunE:  a.run(printCounts),
		},
	)
	return root
}

// run adapts a printer into a cobra RunE that first loads the values.
func (a *app) run(show func(io.Writer, []any) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		values, err := a.load(cmd.Context(), cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		a.logger.Debug("Loaded values",
			zap.String("command", cmd.Name()),
			zap.String("format", a.format),
			zap.Int("count", len(values)),
		)
		return show(cmd.OutOrStdout(), values)
	}
}

func printTags(w io.Writer, values []any) error {
	for _, t := range realtype.ClassifyAll(values) {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func printShallow(w io.Writer, values []any) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, realtype.ShallowOf(v)); err != nil {
			return err
		}
	}
	return nil
}

func printCounts(w io.Writer, values []any) error {
	for _, c := range realtype.CountByType(values) {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", c.Tag, c.Count); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
