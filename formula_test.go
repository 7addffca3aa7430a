package cellgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constLookup(values map[string]float64) LookupFunc {
	return func(pos Position) (float64, error) {
		v, ok := values[pos.String()]
		if !ok {
			return 0, nil
		}
		return v, nil
	}
}

func TestParseFormulaCanonicalPrinting(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1+ 2*3", "1+2*3"},
		{"(1+2)*3", "(1+2)*3"},
		{"1-2-3", "1-2-3"},
		{"1-(2-3)", "1-(2-3)"},
		{"1/(2/3)", "1/(2/3)"},
		{"1/2/3", "1/2/3"},
		{"+5", "5"},
		{"-5", "-5"},
		{"-(1+2)", "-(1+2)"},
		{"A1+B2", "A1+B2"},
	}
	for _, tc := range cases {
		f, err := ParseFormula(tc.in)
		require.NoErrorf(t, err, "parsing %q", tc.in)
		assert.Equalf(t, tc.want, f.Expression(), "input %q", tc.in)
	}
}

func TestParseFormulaSyntaxErrors(t *testing.T) {
	for _, in := range []string{"", "1+", "(1+2", "1 2", "1e5", "A"} {
		_, err := ParseFormula(in)
		assert.Errorf(t, err, "expected %q to fail to parse", in)
	}
}

func TestFormulaReferencedCellsOrderAndDuplication(t *testing.T) {
	f, err := ParseFormula("A1+B2+A1")
	require.NoError(t, err)

	want := []Position{
		MustParsePosition("A1"),
		MustParsePosition("B2"),
		MustParsePosition("A1"),
	}
	if diff := cmp.Diff(want, f.ReferencedCells()); diff != "" {
		t.Fatalf("ReferencedCells mismatch (-want +got):\n%s", diff)
	}
}

func TestFormulaExecuteArithmetic(t *testing.T) {
	f, err := ParseFormula("A1+B1*2")
	require.NoError(t, err)

	result, err := f.Execute(constLookup(map[string]float64{"A1": 1, "B1": 3}))
	require.NoError(t, err)
	assert.Equal(t, 7.0, result)
}

func TestFormulaExecuteDivisionByZero(t *testing.T) {
	f, err := ParseFormula("1/0")
	require.NoError(t, err)

	_, err = f.Execute(constLookup(nil))
	require.Error(t, err)
	fe, ok := err.(*FormulaError)
	require.True(t, ok)
	assert.Equal(t, ErrorArithmetic, fe.Kind)
}

func TestFormulaExecutePropagatesLookupError(t *testing.T) {
	f, err := ParseFormula("A1+1")
	require.NoError(t, err)

	lookup := func(Position) (float64, error) {
		return 0, &FormulaError{Kind: ErrorRef}
	}
	_, err = f.Execute(lookup)
	require.Error(t, err)
	fe, ok := err.(*FormulaError)
	require.True(t, ok)
	assert.Equal(t, ErrorRef, fe.Kind)
}
