package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Eval   bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BENCODE_DEBUG_PARSE")
	d.Encode = boolEnv("BENCODE_DEBUG_ENCODE")
	d.Eval = boolEnv("BENCODE_DEBUG_EVAL")
	d.Diff = boolEnv("BENCODE_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
