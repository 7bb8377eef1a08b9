// Command numconv generates, inspects and verifies the numconv conversion
// catalogue.
//
//	numconv gen --policy checked --word 64 -o checked_word64_gen.go
//	numconv matrix --policy extending
//	numconv verify --config verify.toml --workers 8
package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/numconv/matrix"
)

func main() {
	cli := CLI{}

	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := cli.Globals.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := ctx.Run(&cli.Globals); err != nil {
		logger.Error("run", "error", err)
		os.Exit(1)
	}
}

// newParser builds the kong parser for cli. Extra options are applied after
// the defaults.
func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	var (
		k matrix.Kind
		p matrix.Policy
	)
	defaults := []kong.Option{
		kong.Name("numconv"),
		kong.Description("Generate, inspect and verify explicit numeric conversions"),
		kong.UsageOnError(),
		kong.TypeMapper(reflect.TypeOf(k), kong.MapperFunc(KindDecoder)),
		kong.TypeMapper(reflect.TypeOf(p), kong.MapperFunc(PolicyDecoder)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
	return kong.New(cli, append(defaults, options...)...)
}
