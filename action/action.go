package action

import "fmt"

type Kind string

const (
	KindShift  = Kind("shift")
	KindReduce = Kind("reduce")
	KindGoTo   = Kind("goto")
	KindEmpty  = Kind("empty")
)

func (k Kind) String() string {
	return string(k)
}

// Tag returns the enumerator the consuming parser uses for the kind.
func (k Kind) Tag() string {
	switch k {
	case KindShift:
		return "SLR_SHIFT"
	case KindReduce:
		return "SLR_REDUCE"
	case KindGoTo:
		return "SLR_GOTO"
	}
	return "SLR_EMPTY"
}

// Action is one cell of a parsing table. Operand is a state number for shift and goto actions and
// a production number for reduce actions.
type Action struct {
	Kind    Kind
	Operand int
}

var Empty = Action{
	Kind:    KindEmpty,
	Operand: 0,
}

func NewShift(state int) Action {
	return Action{
		Kind:    KindShift,
		Operand: state,
	}
}

func NewReduce(prod int) Action {
	return Action{
		Kind:    KindReduce,
		Operand: prod,
	}
}

func NewGoTo(state int) Action {
	return Action{
		Kind:    KindGoTo,
		Operand: state,
	}
}

func (a Action) IsEmpty() bool {
	return a.Kind == KindEmpty || a.Kind == ""
}

// String renders the action as a brace literal, e.g. {SLR_SHIFT,3}.
func (a Action) String() string {
	if a.IsEmpty() {
		return fmt.Sprintf("{%v,0}", KindEmpty.Tag())
	}
	return fmt.Sprintf("{%v,%v}", a.Kind.Tag(), a.Operand)
}
