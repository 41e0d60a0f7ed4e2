package main

import (
	"strconv"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/strutil"
	"github.com/avdva/fixed256/rebase"
	"github.com/avdva/fixed256/token"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
	"github.com/urfave/cli"
)

type word uint256.Int

func (w word) String() string {
	i := uint256.Int(w)
	return i.ToBig().String()
}

func (w word) RawString() string {
	return w.String()
}

func (w word) MarshalJSON() ([]byte, error) {
	return strutil.Quote(w.String()), nil
}

func parseWord(s string) (uint256.Int, error) {
	b, err := strutil.ParseInt(s)
	if err != nil {
		return uint256.Int{}, err
	}
	if b.Sign() < 0 {
		return uint256.Int{}, fixed256.NewError(fixed256.ConvertUnderflow, b)
	}
	var result uint256.Int
	if result.SetFromBig(b) {
		return uint256.Int{}, fixed256.NewError(fixed256.ConvertOverflow, b)
	}
	return result, nil
}

func parseWords(ctx *cli.Context, n int) ([]uint256.Int, error) {
	if err := checkArgs(ctx, n); err != nil {
		return nil, err
	}
	result := make([]uint256.Int, n)
	for i := range result {
		w, err := parseWord(ctx.Args().Get(i))
		if err != nil {
			return nil, err
		}
		result[i] = w
	}
	return result, nil
}

func (c *calc) muldivCommand() cli.Command {
	return cli.Command{
		Name:      "muldiv",
		Usage:     "floor(x*y/d) for integers with full precision",
		ArgsUsage: "x y d",
		Action: func(ctx *cli.Context) error {
			args, err := parseWords(ctx, 3)
			if err != nil {
				return err
			}
			result, err := fixed256.MulDiv(args[0], args[1], args[2])
			if err != nil {
				return c.explain("muldiv", err)
			}
			return c.printValue(word(result))
		},
	}
}

func (c *calc) mulFixedCommand() cli.Command {
	return cli.Command{
		Name:      "mulfixed",
		Usage:     "x*y/1e18 for integers, rounded half up",
		ArgsUsage: "x y",
		Action: func(ctx *cli.Context) error {
			args, err := parseWords(ctx, 2)
			if err != nil {
				return err
			}
			result, err := fixed256.MulDivFixed(args[0], args[1])
			if err != nil {
				return c.explain("mulfixed", err)
			}
			return c.printValue(word(result))
		},
	}
}

func (c *calc) roundCommand() cli.Command {
	return cli.Command{
		Name:      "round",
		Usage:     "banker's rounding of an integer to a multiple of 10^digit",
		ArgsUsage: "x digit",
		Action: func(ctx *cli.Context) error {
			if err := checkArgs(ctx, 2); err != nil {
				return err
			}
			x, err := parseWord(ctx.Args().Get(0))
			if err != nil {
				return err
			}
			digit, err := strconv.ParseUint(ctx.Args().Get(1), 10, 8)
			if err != nil {
				return fixed256.Error.Wrap(err)
			}
			result, err := fixed256.BankersRound(x, uint8(digit))
			if err != nil {
				return c.explain("round", err)
			}
			return c.printValue(word(result))
		},
	}
}

type rebaseOp struct {
	name, usage string
	fn          func(r *rebase.Rebase, amount uint256.Int, roundUp bool) (uint256.Int, error)
}

var rebaseOps = []rebaseOp{
	{"to-base", "shares, which amount is worth", func(r *rebase.Rebase, amount uint256.Int, roundUp bool) (uint256.Int, error) {
		return r.ToBase(amount, roundUp)
	}},
	{"to-elastic", "elastic amount, which shares are worth", func(r *rebase.Rebase, amount uint256.Int, roundUp bool) (uint256.Int, error) {
		return r.ToElastic(amount, roundUp)
	}},
	{"add-elastic", "add elastic and the corresponding shares", (*rebase.Rebase).AddElastic},
	{"sub-elastic", "subtract elastic and the corresponding shares", (*rebase.Rebase).SubElastic},
	{"add-base", "add shares and the corresponding elastic", (*rebase.Rebase).AddBase},
	{"sub-base", "subtract shares and the corresponding elastic", (*rebase.Rebase).SubBase},
}

func (c *calc) rebaseCommand() cli.Command {
	var subcommands []cli.Command
	for _, op := range rebaseOps {
		op := op
		subcommands = append(subcommands, cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: "elastic base amount",
			Flags:     []cli.Flag{cli.BoolFlag{Name: "round-up", Usage: "round the result up"}},
			Action: func(ctx *cli.Context) error {
				args, err := parseWords(ctx, 3)
				if err != nil {
					return err
				}
				r := rebase.Rebase{Elastic: args[0], Base: args[1]}
				result, err := op.fn(&r, args[2], ctx.Bool("round-up"))
				if err != nil {
					return c.explain("rebase "+op.name, err)
				}
				c.log.Debugf("rebase %s %s: %s -> %s", op.name, word(args[2]), rebase.Rebase{Elastic: args[0], Base: args[1]}, r)
				if c.json {
					return c.printJSON(map[string]interface{}{"result": word(result), "rebase": r})
				}
				return c.printValue(word(result), "rebase="+r.String())
			},
		})
	}
	return cli.Command{
		Name:        "rebase",
		Usage:       "elastic/base share accounting",
		Subcommands: subcommands,
	}
}

func (c *calc) tokenCommand() cli.Command {
	precision := func(ctx *cli.Context) (token.Precision, error) {
		if err := checkArgs(ctx, 2); err != nil {
			return token.Precision{}, err
		}
		decimals, err := strconv.ParseUint(ctx.Args().Get(0), 10, 8)
		if err != nil {
			return token.Precision{}, fixed256.Error.Wrap(err)
		}
		return token.New(uint8(decimals))
	}
	parseValue := func(s string) (ud60x18.Value, error) {
		if c.raw {
			return ud60x18.FromRawString(s)
		}
		return ud60x18.FromString(s)
	}
	return cli.Command{
		Name:  "token",
		Usage: "token precision conversions",
		Subcommands: []cli.Command{
			{
				Name:      "normalize",
				Usage:     "native token amount to an 18-decimal value",
				ArgsUsage: "decimals amount",
				Action: func(ctx *cli.Context) error {
					p, err := precision(ctx)
					if err != nil {
						return err
					}
					amount, err := parseWord(ctx.Args().Get(1))
					if err != nil {
						return err
					}
					v, err := p.Normalize(amount)
					if err != nil {
						return c.explain("token normalize", err)
					}
					return c.printValue(v)
				},
			},
			{
				Name:      "denormalize",
				Usage:     "18-decimal value to a native token amount",
				ArgsUsage: "decimals value",
				Action: func(ctx *cli.Context) error {
					p, err := precision(ctx)
					if err != nil {
						return err
					}
					v, err := parseValue(ctx.Args().Get(1))
					if err != nil {
						return err
					}
					amount := p.Denormalize(v)
					if back, _ := p.Normalize(amount); back != v {
						c.log.Warnf("%s has more than %d decimals, truncated to %s", v, p.Decimals(), p.Format(amount))
					}
					return c.printValue(word(amount))
				},
			},
			{
				Name:      "precision",
				Usage:     "drop the digits, which the token can't represent",
				ArgsUsage: "decimals value",
				Flags:     []cli.Flag{cli.BoolFlag{Name: "round", Usage: "use banker's rounding instead of truncation"}},
				Action: func(ctx *cli.Context) error {
					p, err := precision(ctx)
					if err != nil {
						return err
					}
					v, err := parseValue(ctx.Args().Get(1))
					if err != nil {
						return err
					}
					result, err := p.ToTokenPrecision(v, ctx.Bool("round"))
					if err != nil {
						return c.explain("token precision", err)
					}
					return c.printValue(result)
				},
			},
		},
	}
}
