package runtime

import (
	"bytes"
	"strings"

	"github.com/lumenlang/lumen/internal/ast"
)

// Function is a first-class function value: its parameter names, its
// body, and the environment captured at the FunctionLiteral that
// produced it (lexical closure, spec.md §3 invariants).
type Function struct {
	Env        *Environment
	Body       *ast.BlockStatement
	Parameters []*ast.Identifier
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
