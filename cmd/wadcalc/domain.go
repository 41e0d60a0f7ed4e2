package main

import (
	"strconv"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/sd59x18"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/urfave/cli"
)

type unaryOp[T value] struct {
	name, usage string
	fn          func(T) (T, error)
}

type binaryOp[T value] struct {
	name, usage string
	fn          func(T, T) (T, error)
}

// domain describes the operations of a fixed-point type.
type domain[T value] struct {
	name, usage     string
	parse, parseRaw func(string) (T, error)
	powu            func(T, uint64) (T, error)
	unary           []unaryOp[T]
	binary          []binaryOp[T]
	ternary         []ternaryOp[T]
}

type ternaryOp[T value] struct {
	name, usage string
	fn          func(T, T, T) (T, error)
}

func infallible[T value](fn func(T) T) func(T) (T, error) {
	return func(x T) (T, error) {
		return fn(x), nil
	}
}

func infallible2[T value](fn func(T, T) T) func(T, T) (T, error) {
	return func(x, y T) (T, error) {
		return fn(x, y), nil
	}
}

var udDomain = domain[ud60x18.Value]{
	name:     "ud",
	usage:    "unsigned 60.18-decimal operations",
	parse:    ud60x18.FromString,
	parseRaw: ud60x18.FromRawString,
	powu:     ud60x18.Value.Powu,
	unary: []unaryOp[ud60x18.Value]{
		{"floor", "greatest whole value <= x", infallible(ud60x18.Value.Floor)},
		{"ceil", "smallest whole value >= x", ud60x18.Value.Ceil},
		{"frac", "fractional part of x", infallible(ud60x18.Value.Frac)},
		{"inv", "1/x", ud60x18.Value.Inv},
		{"exp", "e^x", ud60x18.Value.Exp},
		{"exp2", "2^x", ud60x18.Value.Exp2},
		{"ln", "natural logarithm", ud60x18.Value.Ln},
		{"log2", "binary logarithm", ud60x18.Value.Log2},
		{"log10", "common logarithm", ud60x18.Value.Log10},
		{"sqrt", "square root", ud60x18.Value.Sqrt},
	},
	binary: []binaryOp[ud60x18.Value]{
		{"add", "x+y", ud60x18.Value.Add},
		{"sub", "x-y", ud60x18.Value.Sub},
		{"mul", "x*y", ud60x18.Value.Mul},
		{"div", "x/y", ud60x18.Value.Div},
		{"avg", "arithmetic average", infallible2(ud60x18.Value.Avg)},
		{"gm", "geometric mean", ud60x18.Value.Gm},
		{"pow", "x^y", ud60x18.Value.Pow},
	},
	ternary: []ternaryOp[ud60x18.Value]{
		{"mulratio", "x*(y/z)", ud60x18.Value.MulRatio},
	},
}

var sdDomain = domain[sd59x18.Value]{
	name:     "sd",
	usage:    "signed 59.18-decimal operations",
	parse:    sd59x18.FromString,
	parseRaw: sd59x18.FromRawString,
	powu:     sd59x18.Value.Powu,
	unary: []unaryOp[sd59x18.Value]{
		{"abs", "|x|", sd59x18.Value.Abs},
		{"neg", "-x", sd59x18.Value.Neg},
		{"floor", "greatest whole value <= x", sd59x18.Value.Floor},
		{"ceil", "smallest whole value >= x", sd59x18.Value.Ceil},
		{"frac", "fractional part of x", infallible(sd59x18.Value.Frac)},
		{"inv", "1/x", sd59x18.Value.Inv},
		{"exp", "e^x", sd59x18.Value.Exp},
		{"exp2", "2^x", sd59x18.Value.Exp2},
		{"ln", "natural logarithm", sd59x18.Value.Ln},
		{"log2", "binary logarithm", sd59x18.Value.Log2},
		{"log10", "common logarithm", sd59x18.Value.Log10},
		{"sqrt", "square root", sd59x18.Value.Sqrt},
	},
	binary: []binaryOp[sd59x18.Value]{
		{"add", "x+y", sd59x18.Value.Add},
		{"sub", "x-y", sd59x18.Value.Sub},
		{"mul", "x*y", sd59x18.Value.Mul},
		{"div", "x/y", sd59x18.Value.Div},
		{"avg", "arithmetic average", infallible2(sd59x18.Value.Avg)},
		{"gm", "geometric mean", sd59x18.Value.Gm},
		{"pow", "x^y", sd59x18.Value.Pow},
	},
}

func (d domain[T]) command(c *calc) cli.Command {
	var subcommands []cli.Command
	for _, op := range d.unary {
		op := op
		subcommands = append(subcommands, cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: "x",
			Action: func(ctx *cli.Context) error {
				args, err := d.args(c, ctx, 1)
				if err != nil {
					return err
				}
				return d.finish(c, op.name, args, op.fn)
			},
		})
	}
	for _, op := range d.binary {
		op := op
		subcommands = append(subcommands, cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: "x y",
			Action: func(ctx *cli.Context) error {
				args, err := d.args(c, ctx, 2)
				if err != nil {
					return err
				}
				return d.finish(c, op.name, args, func(T) (T, error) { return op.fn(args[0], args[1]) })
			},
		})
	}
	for _, op := range d.ternary {
		op := op
		subcommands = append(subcommands, cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: "x y z",
			Action: func(ctx *cli.Context) error {
				args, err := d.args(c, ctx, 3)
				if err != nil {
					return err
				}
				return d.finish(c, op.name, args, func(T) (T, error) { return op.fn(args[0], args[1], args[2]) })
			},
		})
	}
	subcommands = append(subcommands, cli.Command{
		Name:      "powu",
		Usage:     "x^n for an integer n",
		ArgsUsage: "x n",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 2); err != nil {
				return err
			}
			x, err := d.parseArg(c, ctx.Args().Get(0))
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(ctx.Args().Get(1), 10, 64)
			if err != nil {
				return fixed256.Error.Wrap(err)
			}
			return d.finish(c, "powu", []T{x}, func(x T) (T, error) { return d.powu(x, n) })
		},
	})
	return cli.Command{
		Name:        d.name,
		Usage:       d.usage,
		Subcommands: subcommands,
	}
}

func (d domain[T]) parseArg(c *calc, s string) (T, error) {
	if c.raw {
		return d.parseRaw(s)
	}
	return d.parse(s)
}

func (d domain[T]) args(c *calc, ctx *cli.Context, n int) ([]T, error) {
	if err := checkArgs(ctx, n); err != nil {
		return nil, err
	}
	result := make([]T, n)
	for i := range result {
		v, err := d.parseArg(c, ctx.Args().Get(i))
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// finish applies fn to the first argument and prints the result.
func (d domain[T]) finish(c *calc, name string, args []T, fn func(T) (T, error)) error {
	result, err := fn(args[0])
	if err != nil {
		return c.explain(d.name+" "+name, err)
	}
	c.log.Debugf("%s %s%v = %s", d.name, name, args, result.RawString())
	return c.printValue(result)
}
