package main

import (
	"fmt"
	"io"
	"os"
)

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

// console prints run progress. Colors are dropped when NO_COLOR is set.
type console struct {
	out   io.Writer
	color bool
}

func newConsole(out io.Writer) *console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &console{out: out, color: !noColor}
}

func (c *console) line(color, mark, format string, a ...interface{}) {
	msg := mark + " " + fmt.Sprintf(format, a...)
	if c.color {
		msg = color + msg + ansiReset
	}
	fmt.Fprintln(c.out, msg)
}

func (c *console) section(title string) {
	fmt.Fprintln(c.out)
	c.line(ansiYellow, "===", "%s ===", title)
}

func (c *console) info(format string, a ...interface{}) { c.line(ansiBlue, "ℹ", format, a...) }
func (c *console) ok(format string, a ...interface{})   { c.line(ansiGreen, "✓", format, a...) }
func (c *console) warn(format string, a ...interface{}) { c.line(ansiYellow, "⚠", format, a...) }
func (c *console) fail(format string, a ...interface{}) { c.line(ansiRed, "✗", format, a...) }
