package symbol

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(m.Run())
}

func TestDefaultNonTerminals(t *testing.T) {
	nonTerms := DefaultNonTerminals()
	want := []string{"A", "B", "C", "E", "F", "I", "R", "S", "T"}
	if got := nonTerms.Names(); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected non-terminals; want: %v, got: %v", want, got)
	}
	if nonTerms.Len() != len(want) {
		t.Fatalf("unexpected size; want: %v, got: %v", len(want), nonTerms.Len())
	}
	if n := NewSet("X", "X", "Y").Len(); n != 2 {
		t.Fatalf("a set must not hold duplicates; got %v members", n)
	}
	for _, sym := range []string{"S'", "state", "s", "id", "+", ""} {
		if nonTerms.Contains(sym) {
			t.Errorf("%q must not be a non-terminal", sym)
		}
	}
}

func TestRouter(t *testing.T) {
	tests := []struct {
		header       []string
		config       *Config
		terminals    []string
		nonTerminals []string
		dropped      []string
	}{
		{
			header:       []string{"state", "a", "S", "S'"},
			terminals:    []string{"a"},
			nonTerminals: []string{"S"},
			dropped:      []string{"state", "S'"},
		},
		{
			header:       []string{"state", "id", "+", "$", "E", "T", "F", "S'", "x"},
			terminals:    []string{"id", "+", "$", "x"},
			nonTerminals: []string{"E", "T", "F"},
			dropped:      []string{"state", "S'"},
		},
		{
			header:       []string{"S", "state", "if"},
			terminals:    []string{"if"},
			nonTerminals: []string{"S"},
			dropped:      []string{"state"},
		},
		{
			header: []string{"no", "a", "X", "Y", "Z'", "S"},
			config: &Config{
				StateColumn:     "no",
				AugmentedColumn: "Z'",
				NonTerminals:    NewSet("X", "Y"),
			},
			terminals:    []string{"a", "S"},
			nonTerminals: []string{"X", "Y"},
			dropped:      []string{"no", "Z'"},
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v", i), func(t *testing.T) {
			r, err := NewRouter(tt.header, tt.config)
			if err != nil {
				t.Fatal(err)
			}
			testColumns(t, tt.terminals, r.Columns(ClassTerminal))
			testColumns(t, tt.nonTerminals, r.Columns(ClassNonTerminal))
			testColumns(t, tt.dropped, r.Columns(ClassDropped))

			// Every column belongs to exactly one class.
			if n := len(tt.terminals) + len(tt.nonTerminals) + len(tt.dropped); n != r.Width() {
				t.Fatalf("columns are lost or duplicated; header: %v, classified: %v", r.Width(), n)
			}
		})
	}
}

func TestNewRouter_EmptyHeader(t *testing.T) {
	_, err := NewRouter(nil, nil)
	if err != ErrEmptyHeader {
		t.Fatalf("unexpected error; want: %v, got: %v", ErrEmptyHeader, err)
	}
}

func testColumns(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("unexpected columns; want: %v, got: %v", expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("unexpected columns; want: %v, got: %v", expected, actual)
		}
	}
}
