package cellgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetInvalidPositionRejected(t *testing.T) {
	s := NewSheet()
	err := s.SetCell(Position{Row: -1, Col: 0}, "1")
	require.Error(t, err)
	var posErr *InvalidPositionError
	assert.True(t, errors.As(err, &posErr))
}

func TestSheetFormulaSyntaxErrorLeavesSheetUnchanged(t *testing.T) {
	s := NewSheet()
	err := s.SetCell(MustParsePosition("A1"), "=1+")
	require.Error(t, err)
	var syntaxErr *FormulaSyntaxError
	assert.True(t, errors.As(err, &syntaxErr))

	cell, err := s.GetCell(MustParsePosition("A1"))
	require.NoError(t, err)
	assert.Equal(t, "", cell.Text())
}

func TestSheetPrintableSizeIgnoresEmptyPlaceholders(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.SetCell(MustParsePosition("A1"), "=C3"))

	rows, cols := s.PrintableSize()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
}

func TestSheetPrintableSizeCoversFormulaResultOfZero(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.SetCell(MustParsePosition("B2"), "=1-1"))

	rows, cols := s.PrintableSize()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}

func TestSheetPrintValuesAndPrintTexts(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.SetCell(MustParsePosition("A1"), "meets"))
	require.NoError(t, s.SetCell(MustParsePosition("B1"), "'=hello"))
	require.NoError(t, s.SetCell(MustParsePosition("A2"), "=1+1"))

	assert.Equal(t, "meets\t=hello\n2\t\n", s.PrintValues())
	assert.Equal(t, "meets\t'=hello\n=1+1\t\n", s.PrintTexts())
}

func TestSheetGetCellOnNeverSetPositionIsEmptyWithoutMaterializing(t *testing.T) {
	s := NewSheet()
	cell, err := s.GetCell(MustParsePosition("A1"))
	require.NoError(t, err)
	assert.Equal(t, EmptyValue(), cell.Value())

	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestSheetDiamondDependencyRecomputesAfterChange(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.SetCell(MustParsePosition("A1"), "1"))
	require.NoError(t, s.SetCell(MustParsePosition("B1"), "=A1+1"))
	require.NoError(t, s.SetCell(MustParsePosition("C1"), "=A1+2"))
	require.NoError(t, s.SetCell(MustParsePosition("D1"), "=B1+C1"))

	d1, err := s.GetCell(MustParsePosition("D1"))
	require.NoError(t, err)
	assert.Equal(t, "5", d1.Value().String())

	require.NoError(t, s.SetCell(MustParsePosition("A1"), "10"))
	assert.Equal(t, "23", d1.Value().String())
}

func TestSheetConfigOverridesGridBounds(t *testing.T) {
	s := NewSheetWithConfig(Config{MaxRows: 2, MaxCols: 2})
	require.NoError(t, s.SetCell(Position{Row: 1, Col: 1}, "1"))

	err := s.SetCell(Position{Row: 2, Col: 0}, "1")
	require.Error(t, err)
	var posErr *InvalidPositionError
	assert.True(t, errors.As(err, &posErr))
}

func TestSheetFormulaRefBeyondDefaultBoundResolvesUnderWidenedConfig(t *testing.T) {
	s := NewSheetWithConfig(Config{MaxRows: MaxRows * 2, MaxCols: MaxCols * 2})
	far := Position{Row: MaxRows + 5, Col: 0}

	require.NoError(t, s.SetCell(far, "7"))
	require.NoError(t, s.SetCell(MustParsePosition("A1"), "="+far.String()+"+1"))

	cell, err := s.GetCell(MustParsePosition("A1"))
	require.NoError(t, err)
	assert.Equal(t, "8", cell.Value().String())
}
