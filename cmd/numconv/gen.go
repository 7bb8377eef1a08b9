package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/numconv/internal/codegen"
	"github.com/hupe1980/numconv/matrix"
)

// GenCmd writes generated Go source.
type GenCmd struct {
	Policy string `help:"Policy to generate (checked, wrapping, extending, truncating), or dispatch for the root registration table"`
	Word   string `help:"Word width of a checked file: all, 32 or 64" default:"all"`
	Output string `short:"o" help:"Output file (default stdout)"`
}

func (cmd *GenCmd) Run(globals *Globals) error {
	logger, err := globals.Logger()
	if err != nil {
		return err
	}

	src, functions, err := cmd.source()
	target := cmd.Policy + "/" + cmd.Word
	if err != nil {
		logger.LogGenerate(context.Background(), target, cmd.Output, 0, err)
		return err
	}

	if err := cmd.write(os.Stdout, src); err != nil {
		logger.LogGenerate(context.Background(), target, cmd.Output, functions, err)
		return err
	}
	logger.LogGenerate(context.Background(), target, cmd.Output, functions, nil)
	return nil
}

// source returns the generated file and the number of functions it holds.
func (cmd *GenCmd) source() ([]byte, int, error) {
	switch cmd.Policy {
	case "":
		return nil, 0, errors.New("missing --policy: one of checked, wrapping, extending, truncating or dispatch")
	case "dispatch":
		if cmd.Word != "" && cmd.Word != "all" {
			return nil, 0, fmt.Errorf("the dispatch table does not depend on the word width")
		}
		src, err := codegen.Dispatch()
		n := 0
		for _, p := range matrix.Policies() {
			n += matrix.Count(p)
		}
		return src, n, err
	}

	policy, err := matrix.ParsePolicy(cmd.Policy)
	if err != nil {
		return nil, 0, err
	}
	target, err := codegen.ParseTarget(cmd.Word)
	if err != nil {
		return nil, 0, err
	}

	g := &codegen.Generator{Policy: policy, Target: target}
	src, err := g.Source()
	if err != nil {
		return nil, 0, err
	}
	return src, len(g.Functions()), nil
}

func (cmd *GenCmd) write(stdout io.Writer, src []byte) error {
	if cmd.Output == "" {
		_, err := stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cmd.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cmd.Output, err)
	}
	return nil
}
