package driver

import "github.com/kbrandt/cparse/lexer"

// TokenStream is the source of tokens the driver consumes. lexer.Lexer
// satisfies it directly; tests substitute a canned stream of tokens to
// drive the shift/reduce loop without a real source file.
type TokenStream interface {
	Next() (lexer.Token, error)
}

// sliceStream replays a fixed token slice, used by the test suite to
// exercise the driver against exact scenarios without going through the
// scanner.
type sliceStream struct {
	toks []lexer.Token
	pos  int
}

// NewSliceStream builds a TokenStream over toks. The caller is responsible
// for ensuring the final token has Kind grammar.SymEOF; Next repeats it
// forever once reached, matching lexer.Lexer's own end-of-input behavior.
func NewSliceStream(toks []lexer.Token) TokenStream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) Next() (lexer.Token, error) {
	if s.pos >= len(s.toks) {
		return s.toks[len(s.toks)-1], nil
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}
