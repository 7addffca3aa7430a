package cellgraph

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sheet owns every Cell in a single grid and is the entry point for
// mutating and reading it. A Sheet is not safe for concurrent use from
// multiple goroutines without external synchronization, matching the
// teacher's single-writer assumption for its worksheet type.
type Sheet struct {
	id     uuid.UUID
	config Config
	cells  map[Position]*Cell
	log    *zap.Logger
}

// SheetOption configures a Sheet at construction time.
type SheetOption func(*Sheet)

// WithLogger overrides the Sheet's logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) SheetOption {
	return func(s *Sheet) {
		s.log = logger
	}
}

// WithConfig overrides the Sheet's grid bounds and other tunables. The
// default is DefaultConfig().
func WithConfig(cfg Config) SheetOption {
	return func(s *Sheet) {
		s.config = cfg
	}
}

// NewSheet creates an empty Sheet.
func NewSheet(opts ...SheetOption) *Sheet {
	s := &Sheet{
		id:     uuid.New(),
		config: DefaultConfig(),
		cells:  make(map[Position]*Cell),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("sheet_id", s.id.String()))
	return s
}

// NewSheetWithConfig creates an empty Sheet using cfg's grid bounds.
func NewSheetWithConfig(cfg Config, opts ...SheetOption) *Sheet {
	return NewSheet(append([]SheetOption{WithConfig(cfg)}, opts...)...)
}

// SetCell parses and commits text into the cell at pos, returning an
// error that wraps *InvalidPositionError, *FormulaSyntaxError, or
// *CircularDependencyError (find it with errors.As) on rejection. A
// rejected call leaves the sheet exactly as it was.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !s.config.contains(pos) {
		return newInvalidPositionError(pos)
	}
	cell, _ := s.materialize(pos)
	if err := cell.Set(text); err != nil {
		s.dropIfOrphanEmpty(pos)
		return err
	}
	return nil
}

// ClearCell resets the cell at pos to Empty, dropping it from the table
// if nothing else references it.
func (s *Sheet) ClearCell(pos Position) error {
	if !s.config.contains(pos) {
		return newInvalidPositionError(pos)
	}
	cell := s.cells[pos]
	if cell == nil {
		return nil
	}
	cell.Clear()
	s.dropIfOrphanEmpty(pos)
	return nil
}

// GetCell returns the cell at pos. A never-set position reports as an
// Empty cell without being materialized into the table.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !s.config.contains(pos) {
		return nil, newInvalidPositionError(pos)
	}
	if cell := s.cells[pos]; cell != nil {
		return cell, nil
	}
	return newCell(s, pos), nil
}

// PrintableSize returns the bounding box (exclusive row/col counts)
// spanning every cell with non-empty Text() — a materialized-but-Empty
// placeholder cell created only to back a dependency edge does not grow
// the box, even though it is referenced.
func (s *Sheet) PrintableSize() (rows, cols int) {
	for pos, cell := range s.cells {
		if cell.Text() == "" {
			continue
		}
		if pos.Row+1 > rows {
			rows = pos.Row + 1
		}
		if pos.Col+1 > cols {
			cols = pos.Col + 1
		}
	}
	return rows, cols
}

// PrintValues renders the printable rectangle's values as a tab-separated,
// newline-terminated grid, each value rendered as Value.String would.
func (s *Sheet) PrintValues() string {
	return s.print(func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.Value().String()
	})
}

// PrintTexts renders the printable rectangle's raw texts the same way
// PrintValues renders values.
func (s *Sheet) PrintTexts() string {
	return s.print(func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.Text()
	})
}

func (s *Sheet) print(render func(*Cell) string) string {
	rows, cols := s.PrintableSize()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if col > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(render(s.cells[Position{Row: r, Col: col}]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// materialize returns the cell at pos, creating and registering an Empty
// one if absent. The bool reports whether a new cell was created.
func (s *Sheet) materialize(pos Position) (*Cell, bool) {
	if cell, ok := s.cells[pos]; ok {
		return cell, false
	}
	cell := newCell(s, pos)
	s.cells[pos] = cell
	s.log.Debug("cell materialized", zap.String("position", pos.String()))
	return cell, true
}

// dropIfOrphanEmpty removes the cell at pos from the table if it holds no
// content and nothing references it, keeping the table free of cells that
// are indistinguishable from never having existed.
func (s *Sheet) dropIfOrphanEmpty(pos Position) {
	cell := s.cells[pos]
	if cell == nil {
		return
	}
	if cell.kind == contentEmpty && !cell.IsReferenced() {
		delete(s.cells, pos)
		s.log.Debug("cell reclaimed", zap.String("position", pos.String()))
	}
}

func (s *Sheet) logCommit(pos Position, invalidated int) {
	s.log.Debug("cell committed",
		zap.String("position", pos.String()),
		zap.Int("cells_invalidated", invalidated),
	)
}

func (s *Sheet) logRejectedCycle(pos Position) {
	s.log.Warn("rejected circular dependency",
		zap.String("position", pos.String()),
	)
}
