package token

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
)

// Scanner reads tokens from a stream one at a time. Like Tokenize, it puts
// no limit on the length of a value.
type Scanner struct {
	sc  *bufio.Scanner
	off int
	n   int
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), math.MaxInt)
	sc.Split(splitSep)
	return &Scanner{sc: sc}
}

func splitSep(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.IndexByte(data, Separator); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return 0, nil, fmt.Errorf("%w: missing final %q", ErrTruncated, Separator)
	}
	return 0, nil, nil
}

// Next returns the next token, or io.EOF after the last one.
func (s *Scanner) Next() (Token, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return Token{}, fmt.Errorf("%w after %d tokens", err, s.n)
		}
		return Token{}, io.EOF
	}
	v := s.sc.Text()
	tok := Token{Kind: kindOf(v), Value: v, Offset: s.off}
	s.off += len(v) + 1
	s.n++
	return tok, nil
}

// All reads the remaining tokens.
func (s *Scanner) All() ([]Token, error) {
	var res []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
}
