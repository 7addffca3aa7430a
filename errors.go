package cellgraph

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// InvalidPositionError is returned when a Sheet operation is given a
// Position outside the bounds of that Sheet's Config.
type InvalidPositionError struct {
	Position Position
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %v", e.Position)
}

func newInvalidPositionError(p Position) error {
	return crdb.WithDetail(&InvalidPositionError{Position: p}, "position is outside the sheet's configured bounds")
}

// FormulaSyntaxError is returned when the text after '=' cannot be parsed
// into a formula AST.
type FormulaSyntaxError struct {
	Expression string
	cause      error
}

func (e *FormulaSyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error in %q: %v", e.Expression, e.cause)
}

func (e *FormulaSyntaxError) Unwrap() error { return e.cause }

func newFormulaSyntaxError(expression string, cause error) error {
	return crdb.Wrapf(&FormulaSyntaxError{Expression: expression, cause: cause}, "parsing %q", expression)
}

// CircularDependencyError is returned when committing a cell's content
// would close a cycle in the dependency graph.
type CircularDependencyError struct {
	Position Position
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency involving %v", e.Position)
}

func newCircularDependencyError(p Position) error {
	return crdb.WithDetail(&CircularDependencyError{Position: p}, "cell is reachable from one of its own referenced cells")
}
