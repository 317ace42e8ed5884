package encode

import "github.com/signadot/bintree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeCheckValues makes Encode fail with ErrReservedValue on values which
// the wire form cannot carry.
func EncodeCheckValues(v bool) EncodeOption {
	return func(es *EncState) { es.checkValues = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNewline terminates the output with a newline.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
