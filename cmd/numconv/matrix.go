package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/hupe1980/numconv/matrix"
)

// MatrixCmd prints the conversion matrix of one policy as a grid, or the
// details of every pair from one source kind.
type MatrixCmd struct {
	Policy matrix.Policy `short:"p" help:"Policy to show (checked, wrapping, extending, truncating)" default:"checked"`
	Word   int           `short:"w" help:"Word width for checked rules: 16, 32 or 64 (default: the compiled target)"`
	Src    string        `short:"s" help:"Show the pairs of one source kind in detail, e.g. u16"`
}

func (cmd *MatrixCmd) Run(globals *Globals) error {
	return cmd.render(os.Stdout)
}

func (cmd *MatrixCmd) render(w io.Writer) error {
	word := matrix.Current()
	if cmd.Word != 0 {
		word = matrix.Word(cmd.Word)
		if !word.Valid() {
			return fmt.Errorf("invalid word width %d (want 16, 32 or 64)", cmd.Word)
		}
	}
	if !cmd.Policy.Valid() {
		return fmt.Errorf("invalid policy %v", cmd.Policy)
	}

	if cmd.Src != "" {
		src, err := matrix.ParseKind(cmd.Src)
		if err != nil {
			return err
		}
		renderRow(w, src, word)
		return nil
	}
	renderGrid(w, cmd.Policy, word)
	return nil
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	faint  = color.New(color.Faint)
	bold   = color.New(color.Bold)
)

// ruleCell returns the two-letter grid symbol of a checked rule.
func ruleCell(r matrix.Rule) string {
	switch r {
	case matrix.Infallible:
		return green.Sprint("ok")
	case matrix.Upper:
		return yellow.Sprint("hi")
	case matrix.Lower:
		return yellow.Sprint("lo")
	case matrix.Both:
		return red.Sprint("hl")
	case matrix.Float:
		return red.Sprint("fl")
	case matrix.FloatNarrow:
		return red.Sprint("fn")
	}
	return faint.Sprint(" .")
}

func cell(p matrix.Policy, word matrix.Word, src, dst matrix.Kind) string {
	if p == matrix.Checked {
		return ruleCell(matrix.CheckedRuleAt(word, src, dst))
	}
	if matrix.Supports(p, src, dst) {
		return green.Sprint(" x")
	}
	return faint.Sprint(" .")
}

func renderGrid(w io.Writer, p matrix.Policy, word matrix.Word) {
	fmt.Fprintf(w, "%s conversions, %s words (rows: source, columns: destination)\n\n", bold.Sprint(p), word)

	fmt.Fprintf(w, "%-6s", "")
	for _, dst := range matrix.Kinds() {
		fmt.Fprintf(w, " %5s", dst.Short())
	}
	fmt.Fprintln(w)

	count := 0
	for _, src := range matrix.Kinds() {
		fmt.Fprintf(w, "%-6s", src.Short())
		for _, dst := range matrix.Kinds() {
			fmt.Fprintf(w, "    %s", cell(p, word, src, dst))
			if p == matrix.Checked && matrix.CheckedRuleAt(word, src, dst) != matrix.Unsupported {
				count++
			}
		}
		fmt.Fprintln(w)
	}
	if p != matrix.Checked {
		count = matrix.Count(p)
	}

	fmt.Fprintln(w)
	if p == matrix.Checked {
		fmt.Fprintln(w, "ok infallible  hi overflow check  lo underflow check  hl both checks  fl float to integer  fn float64 to float32")
	}
	fmt.Fprintf(w, "%d pairs\n", count)
}

func renderRow(w io.Writer, src matrix.Kind, word matrix.Word) {
	for _, dst := range matrix.Kinds() {
		pair := matrix.Pair{Src: src, Dst: dst}

		rules := make([]string, 0, 3)
		for _, ww := range matrix.Words() {
			rules = append(rules, matrix.CheckedRuleAt(ww, src, dst).String())
		}

		var policies []string
		for _, p := range matrix.Policies() {
			if p == matrix.Checked {
				if matrix.CheckedRuleAt(word, src, dst) != matrix.Unsupported {
					policies = append(policies, p.String())
				}
				continue
			}
			if matrix.Supports(p, src, dst) {
				policies = append(policies, p.String())
			}
		}
		list := faint.Sprint("none")
		if len(policies) > 0 {
			list = strings.Join(policies, ", ")
		}

		fmt.Fprintf(w, "%-18s %-40s %s\n", pair, "checked "+strings.Join(rules, "/"), list)
	}
}
