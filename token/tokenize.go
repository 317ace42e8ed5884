package token

import (
	"fmt"
	"strings"
)

// Tokenize splits text on the separator into tokens, keeping order,
// duplicates and null markers. The empty text yields no tokens. Text which
// does not end with the separator has lost its tail and is reported as
// ErrTruncated.
func Tokenize(text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	if text[len(text)-1] != Separator {
		return nil, fmt.Errorf("%w: missing final %q at offset %d",
			ErrTruncated, Separator, len(text))
	}
	parts := strings.Split(text[:len(text)-1], string(Separator))
	res := make([]Token, len(parts))
	off := 0
	for i, part := range parts {
		res[i] = Token{Kind: kindOf(part), Value: part, Offset: off}
		off += len(part) + 1
	}
	return res, nil
}

// Validate checks that toks is exactly one full-slot pre-order tree: every
// value opens two child slots, every token fills one, and the last token
// fills the last open slot. A stream starting with a null marker is rejected.
func Validate(toks []Token) error {
	if len(toks) != 0 && toks[0].Kind == NullKind {
		return fmt.Errorf("%w: leading %s, the empty tree has no encoding", ErrMalformed, toks[0])
	}
	open := 1
	for _, tok := range toks {
		if open == 0 {
			return fmt.Errorf("%w: trailing %s", ErrMalformed, tok)
		}
		open--
		if tok.Kind == ValueKind {
			open += 2
		}
	}
	if open != 0 {
		return fmt.Errorf("%w: %d child slots left unfilled", ErrTruncated, open)
	}
	return nil
}

// Count returns the number of value and null marker tokens in toks.
func Count(toks []Token) (values, nulls int) {
	for _, tok := range toks {
		if tok.Kind == NullKind {
			nulls++
			continue
		}
		values++
	}
	return values, nulls
}

// CheckValue reports whether v can be carried by the encoding.
func CheckValue(v string) error {
	if v == NullMarker {
		return fmt.Errorf("%w: %q is the null marker", ErrReservedValue, v)
	}
	if i := strings.IndexByte(v, Separator); i != -1 {
		return fmt.Errorf("%w: %q contains separator %q at %d", ErrReservedValue, v, Separator, i)
	}
	return nil
}
