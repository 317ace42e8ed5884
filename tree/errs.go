package tree

import "errors"

var (
	ErrBadPath    = errors.New("bad path")
	ErrNoSuchNode = errors.New("no such node")
	ErrBadDoc     = errors.New("bad tree document")
)
