package decode

import "github.com/signadot/bintree/format"

type decodeOpts struct {
	format   format.Format
	validate bool
}

type DecodeOption func(*decodeOpts)

func DecodeFormat(f format.Format) DecodeOption {
	return func(o *decodeOpts) { o.format = f }
}

// NoValidate skips the token shape check. Malformed text is then only caught
// if it leaves the derived sequences inconsistent.
func NoValidate() DecodeOption {
	return func(o *decodeOpts) { o.validate = false }
}

func newOpts(opts []DecodeOption) *decodeOpts {
	o := &decodeOpts{validate: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
