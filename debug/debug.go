package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
	Build  bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("BT_DEBUG_ENCODE")
	d.Decode = boolEnv("BT_DEBUG_DECODE")
	d.Build = boolEnv("BT_DEBUG_BUILD")
	d.Patch = boolEnv("BT_DEBUG_PATCH")
	d.Eval = boolEnv("BT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Build() bool {
	return d.Build
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

// LogAny writes v as a line of JSON, or with %v when it has no JSON form.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
