package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JohnMcGuinness/sprout-parser/internal/calc"
)

func main() {
	var (
		evalSource string
		noColor    bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "sprout [file]",
		Short:         "Evaluate arithmetic expressions with positioned parse errors",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

			source, name, err := readSource(evalSource, args)
			if err != nil {
				return err
			}
			log.Debug().Str("input", name).Int("bytes", len(source)).Msg("parsing")

			expr, err := calc.Parse(source)
			if err != nil {
				if deadEnds, ok := err.(calc.DeadEnds); ok {
					renderDeadEnds(cmd.ErrOrStderr(), name, deadEnds)
					return fmt.Errorf("could not parse %s", name)
				}
				return err
			}

			value, err := calc.Eval(expr)
			if err != nil {
				return err
			}
			log.Debug().Float64("value", value).Msg("evaluated")
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	root.Flags().StringVarP(&evalSource, "eval", "c", "", "Evaluate the given expression instead of reading a file")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := root.Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s\n", red("error: "+err.Error()))
		os.Exit(1)
	}
}

// readSource resolves the input precedence: -c, then a file argument,
// then stdin.
func readSource(evalSource string, args []string) (string, string, error) {
	if evalSource != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("cannot provide both a file and -c input")
		}
		return evalSource, "<eval>", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "<stdin>", nil
}

func renderDeadEnds(w io.Writer, name string, deadEnds calc.DeadEnds) {
	var (
		cyan = color.New(color.FgCyan).SprintFunc()
		red  = color.New(color.FgRed).SprintFunc()
		dim  = color.New(color.Faint).SprintFunc()
	)
	for _, d := range deadEnds {
		fmt.Fprintf(w, "%s %s\n", cyan(fmt.Sprintf("%s:%d:%d:", name, d.Row, d.Col)), red(string(d.Problem)))
		for i, frame := range d.ContextStack {
			indent := strings.Repeat("  ", i+1)
			fmt.Fprintf(w, "%s%s\n", indent, dim(fmt.Sprintf("while parsing %s started at %d:%d", frame.Context, frame.Row, frame.Col)))
		}
	}
}
