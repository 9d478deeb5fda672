package main

import (
	"github.com/urfave/cli/v2"

	"github.com/RabidGuy/bitops/bitvector"
)

var arithmeticCommands = []*cli.Command{
	{
		Name:      "add",
		Usage:     "ripple-carry sum of two or more operands, wrapping on overflow",
		ArgsUsage: "<bits> <bits> [<bits>...]",
		Action:    variadicAction(bitvector.Add),
	},
	{
		Name:      "sub",
		Usage:     "subtract every operand after the first from the first",
		ArgsUsage: "<bits> <bits> [<bits>...]",
		Action:    variadicAction(bitvector.Sub),
	},
	{
		Name:      "inc",
		Usage:     "add one to the operand",
		ArgsUsage: "<bits>",
		Action:    unaryAction(bitvector.Increment),
	},
	{
		Name:      "dec",
		Usage:     "subtract one from the operand",
		ArgsUsage: "<bits>",
		Action:    unaryAction(bitvector.Decrement),
	},
}
