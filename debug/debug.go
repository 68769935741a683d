package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Install bool
	Parse   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("LINTCFG_DEBUG_CONVERT")
	d.Install = boolEnv("LINTCFG_DEBUG_INSTALL")
	d.Parse = boolEnv("LINTCFG_DEBUG_PARSE")
	d.Eval = boolEnv("LINTCFG_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Install() bool {
	return d.Install
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
