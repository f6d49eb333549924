package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/nihei9/slrtab/action"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const (
	NameShiftReduce = "SHIFT_REDUCE_TABLE"
	NameGoTo        = "GOTO_TABLE"

	// DefaultElemType is the struct type the consuming parser declares table entries with.
	DefaultElemType = "SLRop"
)

var ErrOpenRow = errors.New("a table cannot be rendered while a row is open")

// Table accumulates actions row by row. A row is opened implicitly by the first AppendCell call
// after construction or after CloseRow.
type Table struct {
	name string
	rows *arraylist.List
	row  *arraylist.List
}

func NewTable(name string) *Table {
	return &Table{
		name: name,
		rows: arraylist.New(),
		row:  arraylist.New(),
	}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) AppendCell(a action.Action) {
	t.row.Add(a)
}

// CloseRow finishes the open row even when it holds no cells.
func (t *Table) CloseRow() {
	cells := make([]action.Action, 0, t.row.Size())
	for _, v := range t.row.Values() {
		cells = append(cells, v.(action.Action))
	}
	t.rows.Add(cells)
	t.row = arraylist.New()
	T().Debugf("%v: row #%v closed with %v cells", t.name, t.rows.Size()-1, len(cells))
}

func (t *Table) RowCount() int {
	return t.rows.Size()
}

// ColumnCount returns the width of the widest closed row.
func (t *Table) ColumnCount() int {
	n := 0
	for _, v := range t.rows.Values() {
		if w := len(v.([]action.Action)); w > n {
			n = w
		}
	}
	return n
}

// Row returns a copy of a closed row.
func (t *Table) Row(state int) ([]action.Action, bool) {
	v, ok := t.rows.Get(state)
	if !ok {
		return nil, false
	}
	return append([]action.Action{}, v.([]action.Action)...), true
}

// Render writes the closed rows as a single-line brace literal:
//
//	{{{SLR_SHIFT,3},{SLR_EMPTY,0}},{}}
func (t *Table) Render() (string, error) {
	if !t.row.Empty() {
		return "", fmt.Errorf("%v: %w", t.name, ErrOpenRow)
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, v := range t.rows.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for j, a := range v.([]action.Action) {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(a.String())
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String(), nil
}

// RenderDeclaration wraps the rendered literal in a C declaration of a two-dimensional constant
// array, e.g. `const struct SLRop GOTO_TABLE[38][9] = {...};`.
func (t *Table) RenderDeclaration(elemType string) (string, error) {
	lit, err := t.Render()
	if err != nil {
		return "", err
	}
	if elemType == "" {
		elemType = DefaultElemType
	}
	return fmt.Sprintf("const struct %v %v[%v][%v] = %v;", elemType, t.name, t.RowCount(), t.ColumnCount(), lit), nil
}
