package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	WireFormat Format = iota
	JSONFormat
	YAMLFormat
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"w":    WireFormat,
		"wire": WireFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"t":    TextFormat,
		"text": TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case WireFormat:
		return []byte("wire"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsWire() bool { return f == WireFormat }

// IsDoc reports whether f is a nested document form that can be read back.
func (f Format) IsDoc() bool { return f == JSONFormat || f == YAMLFormat }
