package translator

import (
	"errors"
	"fmt"
	"io"

	"github.com/nihei9/slrtab/action"
	verr "github.com/nihei9/slrtab/error"
	"github.com/nihei9/slrtab/source"
	"github.com/nihei9/slrtab/symbol"
	"github.com/nihei9/slrtab/table"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type translateConfig struct {
	routing    symbol.Config
	lenient    bool
	sourceName string
	filePath   string
}

type TranslateOption func(config *translateConfig)

func NonTerminals(syms *symbol.Set) TranslateOption {
	return func(config *translateConfig) {
		config.routing.NonTerminals = syms
	}
}

func StateColumn(name string) TranslateOption {
	return func(config *translateConfig) {
		config.routing.StateColumn = name
	}
}

func AugmentedColumn(name string) TranslateOption {
	return func(config *translateConfig) {
		config.routing.AugmentedColumn = name
	}
}

// Lenient maps codes with an unknown leading character to empty entries.
func Lenient() TranslateOption {
	return func(config *translateConfig) {
		config.lenient = true
	}
}

// Source names the table in error messages. When filePath is not empty, errors quote the offending
// line of the file.
func Source(name string, filePath string) TranslateOption {
	return func(config *translateConfig) {
		config.sourceName = name
		config.filePath = filePath
	}
}

type Result struct {
	ActionTable *table.Table
	GoToTable   *table.Table
	Router      *symbol.Router
}

// Render returns the action table literal and the goto table literal.
func (r *Result) Render() (string, string, error) {
	act, err := r.ActionTable.Render()
	if err != nil {
		return "", "", err
	}
	goTo, err := r.GoToTable.Render()
	if err != nil {
		return "", "", err
	}
	return act, goTo, nil
}

// RenderDeclarations returns the two tables as C declarations.
func (r *Result) RenderDeclarations(elemType string) (string, string, error) {
	act, err := r.ActionTable.RenderDeclaration(elemType)
	if err != nil {
		return "", "", err
	}
	goTo, err := r.GoToTable.RenderDeclaration(elemType)
	if err != nil {
		return "", "", err
	}
	return act, goTo, nil
}

// Translate reads a CSV parsing table and splits it into an action table and a goto table. Each
// data row yields exactly one row in both tables, so the row index in either table is the parser
// state of the source row.
func Translate(src io.Reader, opts ...TranslateOption) (res *Result, retErr error) {
	config := &translateConfig{}
	for _, opt := range opts {
		opt(config)
	}

	defer func() {
		if retErr == nil {
			return
		}
		var tabErr *verr.TableError
		if errors.As(retErr, &tabErr) {
			tabErr.SourceName = config.sourceName
			tabErr.FilePath = config.filePath
		}
	}()

	r, err := source.NewReader(src)
	if err != nil {
		if err == source.ErrNoHeader {
			return nil, &verr.TableError{
				Cause: err,
				State: -1,
			}
		}
		return nil, fmt.Errorf("Cannot read the table: %w", err)
	}
	router, err := symbol.NewRouter(r.Header(), &config.routing)
	if err != nil {
		return nil, &verr.TableError{
			Cause: err,
			State: -1,
		}
	}

	var classifierOpts []action.ClassifierOption
	if config.lenient {
		classifierOpts = append(classifierOpts, action.Lenient())
	}
	c := action.NewClassifier(classifierOpts...)

	actTab := table.NewTable(table.NameShiftReduce)
	goToTab := table.NewTable(table.NameGoTo)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		for col, raw := range rec.Fields {
			class := router.Route(col)
			if class == symbol.ClassDropped {
				continue
			}

			a, err := c.Classify(raw)
			if err != nil {
				return nil, &verr.TableError{
					Cause:  err,
					State:  rec.State,
					Column: router.Symbol(col),
				}
			}

			if class == symbol.ClassNonTerminal {
				goToTab.AppendCell(a)
			} else {
				actTab.AppendCell(a)
			}
		}

		actTab.CloseRow()
		goToTab.CloseRow()
	}

	T().Infof("translated %v states: %v action columns, %v goto columns",
		actTab.RowCount(), len(router.Columns(symbol.ClassTerminal)), len(router.Columns(symbol.ClassNonTerminal)))

	return &Result{
		ActionTable: actTab,
		GoToTable:   goToTab,
		Router:      router,
	}, nil
}
