/*
Package action classifies the raw action codes found in the cells of an SLR parsing table.

A cell holds one of the following codes:

	""       empty entry
	<n>      goto state n
	s<n>     shift and go to state n
	r<n>     reduce by production n

Classification never guesses: a code that does not match one of the forms above is reported as an
error unless the classifier is created with the Lenient option.
*/
package action

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
