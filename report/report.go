package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/nhofer/rangesum"
	"golang.org/x/term"
)

// Row identifies one of the rendered table rows.
type Row int

const (
	// PositionRow holds the 0-based element positions.
	PositionRow Row = iota
	// ValueRow holds the source elements.
	ValueRow
	// PrefixRow holds the running totals.
	PrefixRow
)

func (r Row) label() string {
	switch r {
	case PositionRow:
		return "pos"
	case ValueRow:
		return "val"
	case PrefixRow:
		return "sum"
	}
	return "???"
}

// ConsoleTable renders range-sum tables to a console with a fixed width font.
type ConsoleTable struct {
	colors map[Row]*color.Color
}

// NewConsoleTable creates a new renderer.
//
// colors is a map from rows to colors, used for display. It may contain just
// a subset of the rows; rows without an entry print uncolored. Passing nil
// selects a default palette.
func NewConsoleTable(colors map[Row]*color.Color) *ConsoleTable {
	ct := &ConsoleTable{}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[Row]*color.Color {
	palette := map[Row]*color.Color{
		PositionRow: color.New(color.FgBlue),
		PrefixRow:   color.New(color.FgRed),
	}
	return palette
}

// Config holds rendering parameters.
type Config struct {
	// LineWidth is the target line length in character cells.
	LineWidth int
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	return config
}

// Print renders tab to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T rangesum.Numeric](tab rangesum.Table[T], config *Config, ct *ConsoleTable) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(tab, os.Stdout, config, ct)
}

// Output renders tab to w, folding the three rows into stanzas of columns
// that fit into config.LineWidth.
func Output[T rangesum.Numeric](tab rangesum.Table[T], w io.Writer, config *Config, ct *ConsoleTable) error {
	if tab == nil || config == nil || ct == nil {
		return rangesum.ErrIllegalArguments
	}
	n := tab.Len()
	if n == 0 {
		_, err := fmt.Fprintln(w, "(empty sequence)")
		return err
	}
	cells := collectCells(tab)
	cellWidth := 0
	for _, row := range cells {
		for _, cell := range row {
			if len(cell) > cellWidth {
				cellWidth = len(cell)
			}
		}
	}
	// label, colon and one space of padding per cell
	perStanza := (config.LineWidth - 5) / (cellWidth + 1)
	if perStanza < 1 {
		perStanza = 1
	}
	tracer().Debugf("table report: %d columns, %d per stanza", n, perStanza)
	for offset := 0; offset < n; offset += perStanza {
		limit := offset + perStanza
		if limit > n {
			limit = n
		}
		for row := PositionRow; row <= PrefixRow; row++ {
			if _, err := fmt.Fprintf(w, "%s: ", row.label()); err != nil {
				return err
			}
			for i := offset; i < limit; i++ {
				ct.styledCell(fmt.Sprintf("%*s ", cellWidth, cells[row][i]), row, w)
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if limit < n {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// styledCell outputs one cell, using colors to visualize the row kind.
func (ct *ConsoleTable) styledCell(s string, row Row, w io.Writer) {
	if c, ok := ct.colors[row]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

func collectCells[T rangesum.Numeric](tab rangesum.Table[T]) [3][]string {
	n := tab.Len()
	var cells [3][]string
	for row := range cells {
		cells[row] = make([]string, n)
	}
	for i := 0; i < n; i++ {
		cells[PositionRow][i] = fmt.Sprintf("%d", i)
		cells[ValueRow][i] = fmt.Sprintf("%v", tab.At(i))
		cells[PrefixRow][i] = fmt.Sprintf("%v", tab.Prefix(i))
	}
	return cells
}
