package action

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedCode = errors.New("malformed action code")
	ErrUnknownCode   = errors.New("unknown action code")
)

type classifierConfig struct {
	lenient bool
}

type ClassifierOption func(config *classifierConfig)

// Lenient makes a classifier map codes with an unknown leading character to the empty action
// instead of failing. Codes with a known prefix and a malformed operand still fail.
func Lenient() ClassifierOption {
	return func(config *classifierConfig) {
		config.lenient = true
	}
}

type Classifier struct {
	lenient bool
}

func NewClassifier(opts ...ClassifierOption) *Classifier {
	config := &classifierConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return &Classifier{
		lenient: config.lenient,
	}
}

var defaultClassifier = NewClassifier()

// Classify classifies a raw code with a strict classifier.
func Classify(raw string) (Action, error) {
	return defaultClassifier.Classify(raw)
}

// Classify returns the action a raw cell code denotes. The leading character selects the kind and
// the rest of the code must be a non-negative decimal integer.
func (c *Classifier) Classify(raw string) (Action, error) {
	if raw == "" {
		return Empty, nil
	}

	toks, err := lexCode(raw)
	if err != nil {
		return Empty, err
	}

	head := toks[0]
	if head.invalid {
		if c.lenient {
			T().Debugf("unknown action code %q is treated as an empty entry", raw)
			return Empty, nil
		}
		return Empty, fmt.Errorf("%w: %q", ErrUnknownCode, raw)
	}

	switch head.kind {
	case codeKindNumber:
		n, err := readOperand(raw, toks)
		if err != nil {
			return Empty, err
		}
		return NewGoTo(n), nil
	case codeKindShift:
		n, err := readOperand(raw, toks[1:])
		if err != nil {
			return Empty, err
		}
		return NewShift(n), nil
	case codeKindReduce:
		n, err := readOperand(raw, toks[1:])
		if err != nil {
			return Empty, err
		}
		return NewReduce(n), nil
	}

	return Empty, fmt.Errorf("%w: %q", ErrUnknownCode, raw)
}

// readOperand requires toks to be exactly one number token.
func readOperand(raw string, toks []*codeToken) (int, error) {
	if len(toks) == 0 {
		return 0, fmt.Errorf("%w: %q: missing operand", ErrMalformedCode, raw)
	}
	if len(toks) > 1 || toks[0].invalid || toks[0].kind != codeKindNumber {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCode, raw)
	}
	n, err := strconv.Atoi(toks[0].text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCode, raw, err)
	}
	return n, nil
}
