package action

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

const (
	codeKindShift  = mlspec.LexKindName("shift")
	codeKindReduce = mlspec.LexKindName("reduce")
	codeKindNumber = mlspec.LexKindName("number")
)

func newCodeLexSpec() *mlspec.LexSpec {
	return &mlspec.LexSpec{
		Name: "action_code",
		Entries: []*mlspec.LexEntry{
			{
				Kind:    codeKindShift,
				Pattern: mlspec.LexPattern("s"),
			},
			{
				Kind:    codeKindReduce,
				Pattern: mlspec.LexPattern("r"),
			},
			{
				Kind:    codeKindNumber,
				Pattern: mlspec.LexPattern("[0-9]+"),
			},
		},
	}
}

var (
	codeSpecOnce sync.Once
	codeSpec     *mlspec.CompiledLexSpec
	codeSpecErr  error
)

// compiledCodeSpec compiles the lexical specification of action codes on first use. The compiled
// specification is read-only and shared by all classifiers.
func compiledCodeSpec() (*mlspec.CompiledLexSpec, error) {
	codeSpecOnce.Do(func() {
		s, err, cErrs := mlcompiler.Compile(newCodeLexSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				for i, cErr := range cErrs {
					if i > 0 {
						fmt.Fprintf(&b, "\n")
					}
					fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
					if cErr.Detail != "" {
						fmt.Fprintf(&b, ": %v", cErr.Detail)
					}
				}
				codeSpecErr = fmt.Errorf("%v", b.String())
				return
			}
			codeSpecErr = err
			return
		}
		T().Debugf("action code lexer compiled: %v kinds", len(s.KindNames))
		codeSpec = s
	})
	return codeSpec, codeSpecErr
}

type codeToken struct {
	kind    mlspec.LexKindName
	text    string
	invalid bool
}

type codeLexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newCodeLexer(src io.Reader) (*codeLexer, error) {
	s, err := compiledCodeSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &codeLexer{
		s: s,
		d: d,
	}, nil
}

// next returns nil at the end of input.
func (l *codeLexer) next() (*codeToken, error) {
	tok, err := l.d.Next()
	if err != nil {
		return nil, err
	}
	if tok.EOF {
		return nil, nil
	}
	if tok.Invalid {
		return &codeToken{
			text:    string(tok.Lexeme),
			invalid: true,
		}, nil
	}
	return &codeToken{
		kind: l.s.KindNames[tok.KindID],
		text: string(tok.Lexeme),
	}, nil
}

func lexCode(raw string) ([]*codeToken, error) {
	l, err := newCodeLexer(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}
	var toks []*codeToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
