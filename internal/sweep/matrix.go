package sweep

import "chirpbench/internal/trial"

// Key addresses one cell of the resilience matrix.
type Key struct {
	Protocol trial.Protocol
	SNRLevel float64
}

// Cell aggregates the verdicts of all trials run for one (protocol, SNR)
// combination.
type Cell struct {
	Key      Key
	Verdicts []trial.Verdict
}

// Passes counts successful trials in the cell.
func (c Cell) Passes() int {
	n := 0
	for _, v := range c.Verdicts {
		if v.Success() {
			n++
		}
	}
	return n
}

// Success reports whether a strict majority of the cell's trials passed.
// With a single trial per cell this is that trial's verdict.
func (c Cell) Success() bool {
	return 2*c.Passes() > len(c.Verdicts)
}

// Matrix is the complete set of cells produced by one sweep. Immutable once
// Run returns.
type Matrix struct {
	cells map[Key]Cell
}

// Cell returns the cell for a protocol and SNR level.
func (m *Matrix) Cell(protocol trial.Protocol, snrLevel float64) (Cell, bool) {
	c, ok := m.cells[Key{Protocol: protocol, SNRLevel: snrLevel}]
	return c, ok
}

// Len returns the number of cells.
func (m *Matrix) Len() int {
	return len(m.cells)
}

func (m *Matrix) insert(key Key, verdict trial.Verdict) {
	cell, ok := m.cells[key]
	if !ok {
		cell = Cell{Key: key}
	}
	cell.Verdicts = append(cell.Verdicts, verdict)
	m.cells[key] = cell
}
