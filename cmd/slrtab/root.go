package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "slrtab",
	Short: "Convert an SLR parsing table into static array literals",
	Long: `slrtab reads an SLR parsing table stored as CSV and prints two brace-delimited
array literals: the shift/reduce action table and the goto table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		if *rootFlags.verbose {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace the translation to stderr")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
