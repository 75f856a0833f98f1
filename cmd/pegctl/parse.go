package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/pegkit/calc"
	"github.com/joshuapare/pegkit/internal/writer"
	"github.com/joshuapare/pegkit/peg"
	"github.com/joshuapare/pegkit/pkg/ast"
	"github.com/joshuapare/pegkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	parseEncoding string
	parseOutput   string
	parseNoSpans  bool
	parseMaxText  int
)

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVar(&parseEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, LATIN-1, WINDOWS-1252)")
	cmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write the rendered tree to a file instead of stdout")
	cmd.Flags().BoolVar(&parseNoSpans, "no-spans", false, "Omit line:column ranges from the tree")
	cmd.Flags().IntVar(&parseMaxText, "max-text", 40, "Truncate quoted source text per node (0 disables text)")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an expression file and print its tree",
		Long: `The parse command reads an expression from a file, parses it with the
calculator grammar and prints the resulting tree.

Example:
  pegctl parse expr.txt
  pegctl parse expr.txt --json
  pegctl parse legacy.txt --encoding UTF-16LE -o tree.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
	return cmd
}

func runParse(path string) error {
	printVerbose("Loading input: %s\n", path)

	in, err := peg.LoadInput(path, parseEncoding)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	g := calc.New()
	var errs types.ErrorList
	expr, err := g.Parse(in, &errs)
	if err != nil {
		if errs.Len() > 0 {
			return fmt.Errorf("%s: %s", in.Name(), errs.String())
		}
		return err
	}

	rendered, err := renderTree(expr, in.Source())
	if err != nil {
		return err
	}

	if parseOutput != "" {
		w := &writer.FileWriter{Path: parseOutput}
		if err := w.WriteOutput(rendered); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printVerbose("Wrote tree to %s\n", parseOutput)
		return nil
	}
	_, err = os.Stdout.Write(rendered)
	return err
}

func renderTree(expr ast.Node, src string) ([]byte, error) {
	if jsonOut {
		data, err := json.MarshalIndent(ast.MarshalTree(expr, src), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	opts := ast.DefaultPrintOptions()
	opts.ShowSpans = !parseNoSpans
	opts.MaxTextLen = parseMaxText

	var buf bytes.Buffer
	if err := ast.Fprint(&buf, expr, src, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
