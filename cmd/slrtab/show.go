package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/slrtab/symbol"
	"github.com/nihei9/slrtab/translator"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	table *tableFlags
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print how the columns of an SLR parsing table are split",
		Example: `  slrtab show SLR.csv`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runShow,
	}
	showFlags.table = addTableFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	res, err := translateFromArgs(args, showFlags.table.options()...)
	if err != nil {
		return err
	}
	writeSummary(cmd.OutOrStdout(), res)
	return nil
}

func writeSummary(w io.Writer, res *translator.Result) {
	terms := res.Router.Columns(symbol.ClassTerminal)
	nonTerms := res.Router.Columns(symbol.ClassNonTerminal)
	dropped := res.Router.Columns(symbol.ClassDropped)

	fmt.Fprintf(w, "# States\n\n%v\n\n", res.ActionTable.RowCount())
	fmt.Fprintf(w, "# %v [%v][%v]\n\n", res.ActionTable.Name(), res.ActionTable.RowCount(), len(terms))
	fmt.Fprintf(w, "%v\n\n", strings.Join(terms, " "))
	fmt.Fprintf(w, "# %v [%v][%v]\n\n", res.GoToTable.Name(), res.GoToTable.RowCount(), len(nonTerms))
	fmt.Fprintf(w, "%v\n\n", strings.Join(nonTerms, " "))
	fmt.Fprintf(w, "# Dropped columns\n\n")
	fmt.Fprintf(w, "%v\n", strings.Join(dropped, " "))
}
