package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pegkit/calc"
	"github.com/joshuapare/pegkit/peg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEvalCmd())
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate an arithmetic expression",
		Long: `The eval command parses and evaluates an expression given on the
command line. Multiple arguments are joined with spaces.

Example:
  pegctl eval "1 + 2 * 3"
  pegctl eval "(1 + 2) / 4" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(strings.Join(args, " "))
		},
	}
	return cmd
}

func runEval(src string) error {
	printVerbose("Evaluating: %s\n", src)

	g := calc.New()
	result, err := g.Eval(peg.NewInput("<arg>", src))
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"expr": src, "result": result})
	}
	fmt.Printf("%g\n", result)
	return nil
}
