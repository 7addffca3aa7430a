package cellgraph

// Formula is the parsed, printable, evaluable representation of the text
// following a cell's leading '='. It is the façade described by the
// engine's formula-AST contract: parsing, canonical printing, dependency
// enumeration, and execution against a lookup function are all it exposes.
type Formula struct {
	expr Expr
}

// ParseFormula parses expression (the text after '=') into a Formula, or
// returns an error wrapping a *FormulaSyntaxError (find it with
// errors.As), which in turn wraps the underlying syntax failure.
func ParseFormula(expression string) (*Formula, error) {
	expr, err := parseExpression(expression)
	if err != nil {
		return nil, newFormulaSyntaxError(expression, err)
	}
	return &Formula{expr: expr}, nil
}

// Expression returns the canonical printed form of the formula: minimal
// parentheses consistent with precedence, no redundant unary '+', numeric
// literals in normalized decimal form.
func (f *Formula) Expression() string {
	return f.expr.String()
}

// ReferencedCells returns the positions named by the formula in
// left-to-right order of first occurrence. Callers that need a
// deduplicated, sorted set (as Cell does) should post-process the result.
func (f *Formula) ReferencedCells() []Position {
	return f.expr.ReferencedCells()
}

// Execute evaluates the formula against lookup, which resolves each
// referenced Position to a number or a propagated failure.
func (f *Formula) Execute(lookup LookupFunc) (float64, error) {
	return f.expr.Eval(lookup)
}
