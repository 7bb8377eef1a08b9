package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/hupe1980/numconv/matrix"
)

const header = "// Code generated by numconv gen. DO NOT EDIT.\n\n"

// Build constraints selecting the 32-bit GOARCH values Go supports.
const (
	word32Constraint = "386 || arm || mips || mipsle"
	word64Constraint = "!386 && !arm && !mips && !mipsle"
)

const (
	uint128Import  = `"lukechampine.com/uint128"`
	mathutilImport = `"modernc.org/mathutil"`
	wideImport     = `"github.com/hupe1980/numconv/internal/wide"`
)

// Target selects the part of a policy's catalogue a generated file holds.
type Target int

const (
	// All holds every pair whose code is the same on 32 and 64-bit words.
	All Target = iota
	// Word32 holds the word-dependent checked pairs for 32-bit words.
	Word32
	// Word64 holds the word-dependent checked pairs for 64-bit words.
	Word64
)

// ParseTarget parses "all", "32" or "64".
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "32":
		return Word32, nil
	case "64":
		return Word64, nil
	}
	return 0, fmt.Errorf("unknown word target %q (want all, 32 or 64)", s)
}

func (t Target) String() string {
	switch t {
	case Word32:
		return "32"
	case Word64:
		return "64"
	default:
		return "all"
	}
}

func (t Target) word() matrix.Word {
	if t == Word32 {
		return matrix.Word32
	}
	return matrix.Word64
}

// Check is a single bound test of a checked conversion.
type Check struct {
	Cond string
	Err  string
}

// Function is one generated conversion function.
type Function struct {
	Pair   matrix.Pair
	Rule   matrix.Rule
	Doc    string
	Checks []Check
	// Guard is a call returning an error, used by float sources.
	Guard  string
	Result string
}

// Generator emits the conversion functions of one policy.
type Generator struct {
	Policy matrix.Policy
	Target Target
}

// Functions returns the functions the generator emits, in matrix order.
func (g *Generator) Functions() []Function {
	var out []Function
	for _, p := range matrix.Pairs(g.Policy) {
		if g.Policy != matrix.Checked {
			out = append(out, infallibleFunction(g.Policy, p))
			continue
		}
		dep := matrix.WordDependent(p.Src, p.Dst)
		if dep != (g.Target != All) {
			continue
		}
		out = append(out, checkedFunction(p, matrix.CheckedRuleAt(g.Target.word(), p.Src, p.Dst)))
	}
	return out
}

// Source returns the gofmt-formatted Go source of the generated file.
func (g *Generator) Source() ([]byte, error) {
	if !g.Policy.Valid() {
		return nil, fmt.Errorf("invalid policy %v", g.Policy)
	}
	if g.Target != All && g.Policy != matrix.Checked {
		return nil, fmt.Errorf("%s conversions do not depend on the word width", g.Policy)
	}

	var body bytes.Buffer
	for i, fn := range g.Functions() {
		if i > 0 {
			body.WriteString("\n")
		}
		writeFunction(&body, g.Policy, fn)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	switch g.Target {
	case Word32:
		fmt.Fprintf(&buf, "//go:build %s\n\n", word32Constraint)
	case Word64:
		fmt.Fprintf(&buf, "//go:build %s\n\n", word64Constraint)
	}
	fmt.Fprintf(&buf, "package %s\n\n", g.Policy)
	writeImports(&buf, body.String(), g.Target != All)
	if g.Target != All {
		fmt.Fprintf(&buf, "// Compilation fails unless the target word is %s bits wide.\n", g.Target)
		fmt.Fprintf(&buf, "var _ = [1]struct{}{}[bits.UintSize-%s]\n\n", g.Target)
	}
	buf.Write(body.Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s/%s: %w", g.Policy, g.Target, err)
	}
	return src, nil
}

// Generate writes the generated file to w.
func (g *Generator) Generate(w io.Writer) error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Dispatch returns the source of the root package's registration table.
func Dispatch() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package numconv\n\n")
	buf.WriteString("import (\n")
	for _, path := range []string{"checked", "extending", "matrix", "truncating", "wrapping"} {
		fmt.Fprintf(&buf, "\t\"github.com/hupe1980/numconv/%s\"\n", path)
	}
	buf.WriteString(")\n\n")

	buf.WriteString("func init() {\n")
	for _, p := range matrix.Pairs(matrix.Checked) {
		fmt.Fprintf(&buf, "\tregisterChecked(checked.%s)\n", p.FuncName())
	}
	for _, pol := range []matrix.Policy{matrix.Wrapping, matrix.Extending, matrix.Truncating} {
		buf.WriteString("\n")
		for _, p := range matrix.Pairs(pol) {
			fmt.Fprintf(&buf, "\tregisterInfallible(matrix.%s, %s.%s)\n", policyConst(pol), pol, p.FuncName())
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format dispatch: %w", err)
	}
	return src, nil
}

func policyConst(p matrix.Policy) string {
	s := p.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeImports(buf *bytes.Buffer, body string, wordGuard bool) {
	var groups [][]string
	var std []string
	if strings.Contains(body, "math.") {
		std = append(std, `"math"`)
	}
	if wordGuard {
		std = append(std, `"math/bits"`)
	}
	if len(std) > 0 {
		groups = append(groups, std)
	}
	var ext []string
	if strings.Contains(body, "uint128.Uint128") {
		ext = append(ext, uint128Import)
	}
	if strings.Contains(body, "mathutil.Int128") {
		ext = append(ext, mathutilImport)
	}
	if len(ext) > 0 {
		groups = append(groups, ext)
	}
	if strings.Contains(body, "wide.") {
		groups = append(groups, []string{wideImport})
	}
	if len(groups) == 0 {
		return
	}

	buf.WriteString("import (\n")
	for i, group := range groups {
		if i > 0 {
			buf.WriteString("\n")
		}
		for _, spec := range group {
			fmt.Fprintf(buf, "\t%s\n", spec)
		}
	}
	buf.WriteString(")\n\n")
}

func writeFunction(buf *bytes.Buffer, policy matrix.Policy, fn Function) {
	src, dst := fn.Pair.Src.GoType(), fn.Pair.Dst.GoType()
	fmt.Fprintf(buf, "// %s\n", fn.Doc)
	if policy != matrix.Checked {
		fmt.Fprintf(buf, "func %s(v %s) %s {\n\treturn %s\n}\n", fn.Pair.FuncName(), src, dst, fn.Result)
		return
	}

	zero := zeroValue(fn.Pair.Dst)
	fmt.Fprintf(buf, "func %s(v %s) (%s, error) {\n", fn.Pair.FuncName(), src, dst)
	for _, c := range fn.Checks {
		fmt.Fprintf(buf, "\tif %s {\n\t\treturn %s, %s\n\t}\n", c.Cond, zero, c.Err)
	}
	if fn.Guard != "" {
		fmt.Fprintf(buf, "\tif err := %s; err != nil {\n\t\treturn %s, err\n\t}\n", fn.Guard, zero)
	}
	fmt.Fprintf(buf, "\treturn %s, nil\n}\n", fn.Result)
}
