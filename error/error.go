package error

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TableError reports a failure at a specific position of a source table.
// State is the zero-based index of the data row; it is -1 when the error
// belongs to the header.
type TableError struct {
	Cause      error
	Detail     string
	FilePath   string
	SourceName string
	State      int
	Column     string
}

func (e *TableError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.State >= 0 {
		fmt.Fprintf(&b, "state %v: ", e.State)
	} else {
		fmt.Fprintf(&b, "header: ")
	}
	if e.Column != "" {
		fmt.Fprintf(&b, "column %v: ", e.Column)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	line := readRecordLine(e.FilePath, e.State)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
	}

	return b.String()
}

func (e *TableError) Unwrap() error {
	return e.Cause
}

// readRecordLine returns the source line holding the data row of a state. It counts one record per
// line and skips blank lines the same way the CSV reader does. A quoted field spanning several lines
// breaks that count, so nothing is quoted once a line with an unbalanced double quote is seen.
func readRecordLine(filePath string, state int) string {
	if filePath == "" || state < 0 {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	// The first non-blank line is the header.
	i := -1
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if strings.Count(line, `"`)%2 != 0 {
			return ""
		}
		if strings.TrimRight(line, "\r") == "" {
			continue
		}
		if i == state {
			return line
		}
		i++
	}

	return ""
}
