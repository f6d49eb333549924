package symbol

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const (
	DefaultStateColumn     = "state"
	DefaultAugmentedColumn = "S'"
)

var defaultNonTerminals = NewSet("S", "F", "A", "T", "C", "E", "I", "B", "R")

// DefaultNonTerminals returns the non-terminal symbols of the mini compiler grammar.
func DefaultNonTerminals() *Set {
	return defaultNonTerminals
}

// Set is an immutable set of symbol names.
type Set struct {
	s *hashset.Set
}

func NewSet(names ...string) *Set {
	s := hashset.New()
	for _, name := range names {
		s.Add(name)
	}
	return &Set{
		s: s,
	}
}

func (s *Set) Contains(name string) bool {
	return s.s.Contains(name)
}

func (s *Set) Len() int {
	return s.s.Size()
}

// Names returns the members in lexical order.
func (s *Set) Names() []string {
	names := make([]string, 0, s.s.Size())
	for _, v := range s.s.Values() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}

type Class string

const (
	ClassDropped     = Class("dropped")
	ClassTerminal    = Class("terminal")
	ClassNonTerminal = Class("non-terminal")
)

func (c Class) String() string {
	return string(c)
}

var ErrEmptyHeader = errors.New("a table header must contain at least one column")

type Config struct {
	StateColumn     string
	AugmentedColumn string
	NonTerminals    *Set
}

// Router decides, for every column of a table header, which output table receives its cells.
type Router struct {
	header  []string
	classes []Class
}

func NewRouter(header []string, config *Config) (*Router, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	stateCol := DefaultStateColumn
	augCol := DefaultAugmentedColumn
	nonTerms := DefaultNonTerminals()
	if config != nil {
		if config.StateColumn != "" {
			stateCol = config.StateColumn
		}
		if config.AugmentedColumn != "" {
			augCol = config.AugmentedColumn
		}
		if config.NonTerminals != nil {
			nonTerms = config.NonTerminals
		}
	}

	classes := make([]Class, len(header))
	for i, sym := range header {
		switch {
		case sym == stateCol || sym == augCol:
			classes[i] = ClassDropped
		case nonTerms.Contains(sym):
			classes[i] = ClassNonTerminal
		default:
			classes[i] = ClassTerminal
		}
		T().Debugf("column #%v %v: %v", i, sym, classes[i])
	}

	return &Router{
		header:  append([]string{}, header...),
		classes: classes,
	}, nil
}

func (r *Router) Width() int {
	return len(r.header)
}

func (r *Router) Route(col int) Class {
	if col < 0 || col >= len(r.classes) {
		panic(fmt.Errorf("column index out of range: %v", col))
	}
	return r.classes[col]
}

func (r *Router) Symbol(col int) string {
	return r.header[col]
}

// Columns returns the symbols of a class in header order.
func (r *Router) Columns(c Class) []string {
	var syms []string
	for i, sym := range r.header {
		if r.classes[i] == c {
			syms = append(syms, sym)
		}
	}
	return syms
}
