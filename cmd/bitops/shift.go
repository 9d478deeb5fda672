package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/RabidGuy/bitops/bitvector"
)

func shiftFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "by",
			Usage:    "number of positions to shift",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "fill",
			Usage: "bit value for vacated positions (0 or 1)",
			Value: 0,
		},
	}
}

var shiftCommands = []*cli.Command{
	{
		Name:      "lsh",
		Usage:     "shift a vector left, discarding high bits",
		ArgsUsage: "<bits>",
		Flags:     shiftFlags(),
		Action:    shiftAction(bitvector.ShiftLeftFill0, bitvector.ShiftLeftFill1),
	},
	{
		Name:      "rsh",
		Usage:     "shift a vector right, discarding low bits",
		ArgsUsage: "<bits>",
		Flags:     shiftFlags(),
		Action:    shiftAction(bitvector.ShiftRightFill0, bitvector.ShiftRightFill1),
	},
}

func shiftAction(fill0, fill1 func(int, bitvector.BitVector) (bitvector.BitVector, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		v, err := operand(ctx)
		if err != nil {
			return err
		}
		op := fill0
		switch ctx.Int("fill") {
		case 0:
		case 1:
			op = fill1
		default:
			return errors.Errorf("fill must be 0 or 1 (given %d)", ctx.Int("fill"))
		}
		out, err := op(ctx.Int("by"), v)
		if err != nil {
			return err
		}
		return printResult(ctx, out)
	}
}
