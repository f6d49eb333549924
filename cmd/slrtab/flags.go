package main

import (
	"strings"

	"github.com/nihei9/slrtab/symbol"
	"github.com/nihei9/slrtab/translator"
	"github.com/spf13/cobra"
)

// tableFlags are the flags that control how a source table is read.
type tableFlags struct {
	nonTerminals    *[]string
	stateColumn     *string
	augmentedColumn *string
	lenient         *bool
}

func addTableFlags(cmd *cobra.Command) *tableFlags {
	return &tableFlags{
		nonTerminals:    cmd.Flags().StringSlice("non-terminals", symbol.DefaultNonTerminals().Names(), "symbols whose columns form the goto table"),
		stateColumn:     cmd.Flags().String("state-column", symbol.DefaultStateColumn, "column holding the state number; it is dropped"),
		augmentedColumn: cmd.Flags().String("augmented-column", symbol.DefaultAugmentedColumn, "column of the augmented start symbol; it is dropped"),
		lenient:         cmd.Flags().Bool("lenient", false, "treat codes with an unknown leading character as empty entries"),
	}
}

func (f *tableFlags) options() []translator.TranslateOption {
	var nonTerms []string
	for _, sym := range *f.nonTerminals {
		sym = strings.TrimSpace(sym)
		if sym != "" {
			nonTerms = append(nonTerms, sym)
		}
	}
	opts := []translator.TranslateOption{
		translator.NonTerminals(symbol.NewSet(nonTerms...)),
		translator.StateColumn(*f.stateColumn),
		translator.AugmentedColumn(*f.augmentedColumn),
	}
	if *f.lenient {
		opts = append(opts, translator.Lenient())
	}
	return opts
}
