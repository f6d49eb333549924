package source

import (
	"errors"
	"fmt"
	"io"

	verr "github.com/nihei9/slrtab/error"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/shapestone/shape-csv/pkg/csv"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var ErrNoHeader = errors.New("a table must start with a header row")

// Record is a data row of a table. State is the zero-based index of the row among the data rows,
// which is also the parser state the row describes.
type Record struct {
	State  int
	Fields []string
}

// Reader reads a CSV table whose first record is the header. Blank lines are ignored.
type Reader struct {
	sc     *csv.Scanner
	header []string

	// pending is true while the scanner holds a record Next hasn't returned yet.
	pending bool
	done    bool
	state   int
}

func NewReader(src io.Reader) (*Reader, error) {
	sc := csv.NewScanner(src).SetHasHeaders(true)
	pending := sc.Scan()
	if err := sc.Err(); err != nil {
		return nil, err
	}
	header := sc.Headers()
	if len(header) == 0 {
		return nil, ErrNoHeader
	}
	T().Debugf("table header: %v", header)
	return &Reader{
		sc:      sc,
		header:  header,
		pending: pending,
		done:    !pending,
	}, nil
}

func (r *Reader) Header() []string {
	return append([]string{}, r.header...)
}

// Next returns the next data row, or io.EOF after the last one.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}
	if !r.pending {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, err
			}
			r.done = true
			return nil, io.EOF
		}
	}
	r.pending = false

	state := r.state
	r.state++

	rec := r.sc.Record()
	if rec.Len() != len(r.header) {
		return nil, &verr.TableError{
			Cause:  csv.ErrFieldCount,
			Detail: fmt.Sprintf("the row has %v fields, the header has %v", rec.Len(), len(r.header)),
			State:  state,
		}
	}
	return &Record{
		State:  state,
		Fields: rec.Fields(),
	}, nil
}
