package token

import (
	"fmt"
	"strconv"
)

const (
	NullMarker = "-"
	Separator  = '#'
)

type Kind int

const (
	ValueKind Kind = iota
	NullKind
)

func (k Kind) String() string {
	switch k {
	case ValueKind:
		return "value"
	case NullKind:
		return "null"
	default:
		return fmt.Sprintf("<err: %d is not a token kind>", int(k))
	}
}

type Token struct {
	Kind  Kind
	Value string
	// Offset is the byte offset of the token in the encoded text.
	Offset int
}

func Value(v string) Token {
	return Token{Kind: ValueKind, Value: v}
}

func Null() Token {
	return Token{Kind: NullKind, Value: NullMarker}
}

func (t Token) IsNull() bool { return t.Kind == NullKind }

func (t Token) String() string {
	return fmt.Sprintf("%s %s at offset %d", t.Kind, strconv.Quote(t.Value), t.Offset)
}

func kindOf(v string) Kind {
	if v == NullMarker {
		return NullKind
	}
	return ValueKind
}
