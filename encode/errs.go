package encode

import (
	"errors"

	"github.com/signadot/bintree/token"
)

var (
	ErrEncoding      = errors.New("encoding error")
	ErrReservedValue = token.ErrReservedValue
)
