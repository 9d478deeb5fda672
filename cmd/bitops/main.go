// bitops is a command line tool for operating on big-endian bit vectors
// written as binary strings, e.g. `bitops add 11000101 00010110`.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/RabidGuy/bitops/bitvector"
	"github.com/RabidGuy/bitops/encoding/bitval"
	"github.com/RabidGuy/bitops/runtime/version"
)

var log = logrus.WithField("prefix", "bitops")

func newApp() *cli.App {
	var commands []*cli.Command
	commands = append(commands, logicalCommands...)
	commands = append(commands, shiftCommands...)
	commands = append(commands, arithmeticCommands...)

	return &cli.App{
		Name:     "bitops",
		Usage:    "operate on big-endian bit vectors written as binary strings",
		Version:  version.GetVersion(),
		Commands: commands,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "also print the result packed into big-endian bytes, as hex",
			},
			&cli.BoolFlag{
				Name:  "decimal",
				Usage: "also print the numeric value of the result (64 bits at most)",
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}

// operands parses every positional argument as a binary string.
func operands(ctx *cli.Context) ([]bitvector.BitVector, error) {
	args := ctx.Args().Slice()
	vs := make([]bitvector.BitVector, 0, len(args))
	for i, arg := range args {
		v, err := bitval.FromString(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i+1)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// operand parses the single positional argument of a unary command.
func operand(ctx *cli.Context) (bitvector.BitVector, error) {
	if ctx.NArg() != 1 {
		return nil, errors.Errorf("%s takes exactly one operand (given %d)", ctx.Command.Name, ctx.NArg())
	}
	v, err := bitval.FromString(ctx.Args().First())
	if err != nil {
		return nil, errors.Wrap(err, "operand 1")
	}
	return v, nil
}

func printResult(ctx *cli.Context, v bitvector.BitVector) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, bitval.ToString(v))
	if ctx.Bool("hex") {
		fmt.Fprintf(w, "0x%x\n", bitval.ToBytes(v))
	}
	if ctx.Bool("decimal") {
		x, err := bitval.ToUint64(v)
		if err != nil {
			return errors.Wrap(err, "cannot print decimal")
		}
		fmt.Fprintln(w, x)
	}
	return nil
}
