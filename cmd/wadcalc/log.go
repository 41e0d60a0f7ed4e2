package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed).FprintfFunc()
	yellow = color.New(color.FgYellow).FprintfFunc()
	blue   = color.New(color.FgBlue).FprintfFunc()
)

// logger prints leveled messages with colored prefixes.
type logger struct {
	out     io.Writer
	verbose bool
}

func newLogger(out io.Writer) *logger {
	return &logger{out: out}
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	blue(l.out, "debug ")
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	yellow(l.out, "warning ")
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	red(l.out, "error ")
	fmt.Fprintf(l.out, format+"\n", args...)
}
