package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numconv/internal/logging"
	"github.com/hupe1980/numconv/matrix"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestParser(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{"matrix defaults", []string{"matrix"}, "matrix", func(t *testing.T, cli *CLI) {
			assert.Equal(t, matrix.Checked, cli.Matrix.Policy)
			assert.Zero(t, cli.Matrix.Word)
			assert.Equal(t, "info", cli.LogLevel)
			assert.Equal(t, "text", cli.LogFormat)
		}},
		{"matrix flags", []string{"matrix", "--policy", "wrapping", "--word", "32", "--src", "u16"}, "matrix", func(t *testing.T, cli *CLI) {
			assert.Equal(t, matrix.Wrapping, cli.Matrix.Policy)
			assert.Equal(t, 32, cli.Matrix.Word)
			assert.Equal(t, "u16", cli.Matrix.Src)
		}},
		{"verify defaults", []string{"verify"}, "verify", func(t *testing.T, cli *CLI) {
			assert.Equal(t, -1, cli.Verify.Samples)
			assert.Empty(t, cli.Verify.Policies)
		}},
		{"verify flags", []string{"verify", "--samples", "0", "--policies", "checked"}, "verify", func(t *testing.T, cli *CLI) {
			assert.Equal(t, 0, cli.Verify.Samples)
			assert.Equal(t, []string{"checked"}, cli.Verify.Policies)
		}},
		{"gen policy", []string{"gen", "--policy", "wrapping"}, "gen", func(t *testing.T, cli *CLI) {
			assert.Equal(t, "wrapping", cli.Gen.Policy)
			assert.Equal(t, "all", cli.Gen.Word)
		}},
		{"gen dispatch", []string{"--log-format", "json", "gen", "--policy", "dispatch", "-o", "x.go"}, "gen", func(t *testing.T, cli *CLI) {
			assert.Equal(t, "dispatch", cli.Gen.Policy)
			assert.Equal(t, "x.go", cli.Gen.Output)
			assert.Equal(t, "json", cli.LogFormat)
		}},
		{"gen without policy", []string{"gen"}, "gen", func(t *testing.T, cli *CLI) {
			_, _, err := cli.Gen.source()
			assert.ErrorContains(t, err, "missing --policy")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := CLI{}
			parser, err := newParser(&cli)
			require.NoError(t, err)

			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.command, ctx.Command())
			tt.check(t, &cli)
		})
	}

	t.Run("rejections", func(t *testing.T) {
		for _, args := range [][]string{
			{"matrix", "--policy", "saturating"},
			{"matrix", "--src"},
			{"--log-format", "xml", "matrix"},
			{"gen", "--word"},
		} {
			cli := CLI{}
			parser, err := newParser(&cli)
			require.NoError(t, err)

			_, err = parser.Parse(args)
			assert.Error(t, err, "%v", args)
		}
	})
}

func TestGenCmd(t *testing.T) {
	t.Run("checked word file", func(t *testing.T) {
		cmd := GenCmd{Policy: "checked", Word: "64"}
		src, n, err := cmd.source()
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Contains(t, string(src), "//go:build !386 && !arm && !mips && !mipsle")
		assert.Contains(t, string(src), "func Uint64ToUint(v uint64) (uint, error) {")
	})

	t.Run("dispatch", func(t *testing.T) {
		cmd := GenCmd{Policy: "dispatch", Word: "all"}
		src, n, err := cmd.source()
		require.NoError(t, err)
		assert.Equal(t, 182+12+35+24, n)
		assert.Contains(t, string(src), "registerInfallible(matrix.Wrapping, wrapping.Uint8ToInt8)")
	})

	t.Run("rejections", func(t *testing.T) {
		for _, cmd := range []GenCmd{
			{Policy: "dispatch", Word: "32"},
			{Policy: "wrapping", Word: "64"},
			{Policy: "checked", Word: "16"},
			{Policy: "saturating", Word: "all"},
			{Word: "all"},
		} {
			_, _, err := cmd.source()
			assert.Error(t, err, "%+v", cmd)
		}
	})

	t.Run("write file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wrapping_gen.go")
		cmd := GenCmd{Policy: "wrapping", Word: "all", Output: path}
		require.NoError(t, cmd.Run(&Globals{LogLevel: "error", LogFormat: "text"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "// Code generated by numconv gen. DO NOT EDIT."))
	})
}

func TestMatrixCmd(t *testing.T) {
	t.Run("checked grid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&MatrixCmd{Policy: matrix.Checked, Word: 64}).render(&buf))

		out := buf.String()
		assert.Contains(t, out, "checked conversions, 64-bit words")
		assert.Contains(t, out, "182 pairs")
		lines := strings.Split(out, "\n")
		assert.True(t, strings.HasPrefix(lines[3], "u8 "))
	})

	t.Run("wrapping grid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&MatrixCmd{Policy: matrix.Wrapping}).render(&buf))
		assert.Contains(t, buf.String(), "12 pairs")
	})

	t.Run("source detail", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&MatrixCmd{Src: "isize", Word: 32}).render(&buf))

		out := buf.String()
		assert.Contains(t, out, "checked infallible/infallible/both")
		assert.Regexp(t, `int->int8 +checked both/both/both +checked, truncating`, out)
		assert.Equal(t, matrix.NumKinds, strings.Count(out, "\n"))
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, (&MatrixCmd{Word: 48}).render(&buf))
		assert.Error(t, (&MatrixCmd{Src: "u7"}).render(&buf))
	})
}

func TestVerifyCmdRun(t *testing.T) {
	var out, log bytes.Buffer
	cmd := VerifyCmd{Samples: 0, Policies: []string{"wrapping"}, Workers: 2}

	err := cmd.run(context.Background(), &out, logging.New(&log, "text", slog.LevelInfo))
	require.NoError(t, err)
	assert.Equal(t, "12 pairs", strings.SplitN(out.String(), ",", 2)[0])
	assert.Contains(t, out.String(), ": ok")
	assert.Contains(t, log.String(), "verification passed")
}

func TestGlobalsLogger(t *testing.T) {
	_, err := (&Globals{LogLevel: "chatty"}).Logger()
	assert.Error(t, err)

	var buf bytes.Buffer
	l, err := (&Globals{LogLevel: "debug", LogFormat: "json"}).loggerTo(&buf)
	require.NoError(t, err)
	l.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
