package decode

import (
	"errors"

	"github.com/signadot/bintree/format"
)

var (
	ErrDecode       = errors.New("decode error")
	ErrInconsistent = errors.New("inconsistent in-order and pre-order sequences")
	ErrBadFormat    = format.ErrBadFormat
)
