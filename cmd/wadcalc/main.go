// wadcalc is a command-line calculator for 18-decimal fixed-point numbers.
//
//	wadcalc ud mul 1.5 2
//	wadcalc --raw sd div -- -22000000000000000000 7000000000000000000
//	wadcalc --json rebase to-elastic --round-up 480 320 20
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/sd59x18"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/urfave/cli"
)

func main() {
	log := newLogger(os.Stderr)
	if err := newApp(log).Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// calc holds the settings of the current run.
type calc struct {
	log       *logger
	out       io.Writer
	raw, json bool
}

func newApp(log *logger) *cli.App {
	c := &calc{log: log}
	app := cli.NewApp()
	app.Name = "wadcalc"
	app.Usage = "deterministic 256-bit fixed-point calculator"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "raw", Usage: "read and print values as scaled integers"},
		cli.BoolFlag{Name: "json", Usage: "print results as json"},
		cli.BoolFlag{Name: "verbose", Usage: "print debug messages"},
	}
	app.Before = func(ctx *cli.Context) error {
		c.raw, c.json = ctx.Bool("raw"), ctx.Bool("json")
		c.log.verbose = ctx.Bool("verbose")
		c.out = ctx.App.Writer
		ud60x18.JSONMode, sd59x18.JSONMode = ud60x18.JSONModeString, sd59x18.JSONModeString
		if c.raw {
			ud60x18.JSONMode, sd59x18.JSONMode = ud60x18.JSONModeRaw, sd59x18.JSONModeRaw
		}
		return nil
	}
	app.Commands = []cli.Command{
		udDomain.command(c),
		sdDomain.command(c),
		c.muldivCommand(),
		c.mulFixedCommand(),
		c.roundCommand(),
		c.rebaseCommand(),
		c.tokenCommand(),
	}
	return app
}

type value interface {
	String() string
	RawString() string
}

// printValue prints v followed by optional notes. Notes are omitted in json mode.
func (c *calc) printValue(v value, notes ...string) error {
	if c.json {
		return c.printJSON(map[string]interface{}{"result": v})
	}
	s := v.String()
	if c.raw {
		s = v.RawString()
	}
	if len(notes) > 0 {
		s += " " + strings.Join(notes, " ")
	}
	fmt.Fprintln(c.out, s)
	return nil
}

func (c *calc) printJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, string(data))
	return nil
}

// explain logs the details of an arithmetic error in verbose mode.
func (c *calc) explain(op string, err error) error {
	var ae *fixed256.ArithError
	if errors.As(err, &ae) {
		c.log.Debugf("%s failed with %q, operands %v", op, ae.Kind.String(), ae.Operands)
	}
	return err
}

func checkArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fixed256.Error.New("%s: expected %d arguments, got %d", ctx.Command.Name, n, ctx.NArg())
	}
	return nil
}
