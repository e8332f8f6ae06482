package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Decode bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TPTP_DEBUG_PARSE")
	d.Decode = boolEnv("TPTP_DEBUG_DECODE")
	d.Encode = boolEnv("TPTP_DEBUG_ENCODE")
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
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}

// Set turns the switches on or off, for tools and tests which enable
// logging without the environment.
func Set(parse, decode, encode bool) {
	d.Parse, d.Decode, d.Encode = parse, decode, encode
}
