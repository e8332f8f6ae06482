package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tptp-format/go-tptp/ast"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ast.Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ast.Class]func(string, ...any) string{},
	}
	colors.Map[ast.ClassPunct] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[ast.ClassConnective] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[ast.ClassQuantifier] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[ast.ClassVariable] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ast.ClassFunctor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ast.ClassDefined] = color.CyanString
	colors.Map[ast.ClassSystem] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[ast.ClassNumber] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ast.ClassDistinct] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cl ast.Class, s string) string {
	return c.Get(cl)(s)
}

func (c *Colors) Get(cl ast.Class) func(string, ...any) string {
	f := c.Map[cl]
	if f == nil {
		return c.Default
	}
	return f
}
