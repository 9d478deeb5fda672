package main

import (
	"github.com/urfave/cli/v2"

	"github.com/RabidGuy/bitops/bitvector"
)

var logicalCommands = []*cli.Command{
	{
		Name:      "and",
		Usage:     "bitwise conjunction of two or more operands",
		ArgsUsage: "<bits> <bits> [<bits>...]",
		Action:    variadicAction(bitvector.And),
	},
	{
		Name:      "or",
		Usage:     "bitwise disjunction of two or more operands",
		ArgsUsage: "<bits> <bits> [<bits>...]",
		Action:    variadicAction(bitvector.Or),
	},
	{
		Name:      "xor",
		Usage:     "bitwise parity of two or more operands",
		ArgsUsage: "<bits> <bits> [<bits>...]",
		Action:    variadicAction(bitvector.Xor),
	},
	{
		Name:      "not",
		Usage:     "bitwise complement of one operand",
		ArgsUsage: "<bits>",
		Action:    unaryAction(bitvector.Not),
	},
}

func variadicAction(op func(...bitvector.BitVector) (bitvector.BitVector, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		vs, err := operands(ctx)
		if err != nil {
			return err
		}
		out, err := op(vs...)
		if err != nil {
			return err
		}
		return printResult(ctx, out)
	}
}

func unaryAction(op func(bitvector.BitVector) bitvector.BitVector) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		v, err := operand(ctx)
		if err != nil {
			return err
		}
		return printResult(ctx, op(v))
	}
}
