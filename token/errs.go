package token

import "errors"

var (
	ErrTruncated     = errors.New("truncated encoding")
	ErrMalformed     = errors.New("malformed encoding")
	ErrReservedValue = errors.New("reserved value")
)
