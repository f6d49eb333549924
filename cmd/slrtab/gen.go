package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/slrtab/table"
	"github.com/nihei9/slrtab/translator"
	"github.com/spf13/cobra"
)

var genFlags = struct {
	table    *tableFlags
	output   *string
	declare  *bool
	elemType *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print the action table and the goto table of an SLR parsing table",
		Example: `  slrtab gen SLR.csv
  slrtab gen SLR.csv --declare -o slr_table.h`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGen,
	}
	genFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	genFlags.table = addTableFlags(cmd)
	genFlags.declare = cmd.Flags().Bool("declare", false, "print C declarations instead of bare literals")
	genFlags.elemType = cmd.Flags().String("elem-type", table.DefaultElemType, "struct type of table entries in C declarations")
	rootCmd.AddCommand(cmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	res, err := translateFromArgs(args, genFlags.table.options()...)
	if err != nil {
		return err
	}

	var act, goTo string
	if *genFlags.declare {
		act, goTo, err = res.RenderDeclarations(*genFlags.elemType)
	} else {
		act, goTo, err = res.Render()
	}
	if err != nil {
		return err
	}

	var w io.Writer
	if *genFlags.output != "" {
		f, err := os.OpenFile(*genFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot create an output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = cmd.OutOrStdout()
	}

	_, err = fmt.Fprintf(w, "%v\n%v\n", act, goTo)
	if err != nil {
		return fmt.Errorf("Cannot write the tables: %w", err)
	}
	return nil
}

// translateFromArgs translates the table named by the first argument, or the standard input when no
// argument is given.
func translateFromArgs(args []string, opts ...translator.TranslateOption) (*translator.Result, error) {
	if len(args) == 0 {
		return translator.Translate(os.Stdin, append(opts, translator.Source("stdin", ""))...)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the table file %s: %w", path, err)
	}
	defer f.Close()

	return translator.Translate(f, append(opts, translator.Source(path, path))...)
}
