package main

import (
	"io"
	"os"
	"reflect"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/numconv/internal/logging"
	"github.com/hupe1980/numconv/matrix"
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `help:"Log format" enum:"text,json" default:"text"`
}

// Logger builds the logger selected by the global flags, writing to stderr.
func (g *Globals) Logger() (*logging.Logger, error) {
	return g.loggerTo(os.Stderr)
}

func (g *Globals) loggerTo(w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, g.LogFormat, level), nil
}

// CLI is the numconv command tree.
type CLI struct {
	Globals

	Gen    GenCmd    `cmd:"" help:"Generate the conversion functions of a policy"`
	Matrix MatrixCmd `cmd:"" help:"Print the conversion matrix"`
	Verify VerifyCmd `cmd:"" help:"Verify every conversion against an exact oracle"`
}

// KindDecoder decodes a numeric kind name such as "u16" or "int128".
func KindDecoder(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("kind", &value); err != nil {
		return err
	}

	k, err := matrix.ParseKind(value)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(k))
	return nil
}

// PolicyDecoder decodes a conversion policy name.
func PolicyDecoder(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("policy", &value); err != nil {
		return err
	}

	p, err := matrix.ParsePolicy(value)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(p))
	return nil
}
