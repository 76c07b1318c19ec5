package report

import (
	"chirpbench/internal/sweep"
	"chirpbench/internal/trial"
)

// CellStatus is the rendered state of one matrix cell.
type CellStatus string

const (
	StatusPass    CellStatus = "OK"
	StatusFail    CellStatus = "FAIL"
	StatusMissing CellStatus = "?"
)

// Row holds the verdicts of one SNR level across all protocols, in the
// protocol order given to Build.
type Row struct {
	SNRLevel float64
	Cells    []CellStatus
}

// Stats summarizes one protocol across the sweep.
type Stats struct {
	Protocol trial.Protocol
	Passes   int
	Cells    int
	// Rate is Passes/Cells in [0, 1].
	Rate float64
	// MinWorkingSNR is the lowest SNR level at which the protocol still
	// passed; nil when it never passed.
	MinWorkingSNR *float64
}

// Report is the complete summary of one sweep: SNR levels as rows, protocols
// as columns, plus per-protocol statistics.
type Report struct {
	Protocols []trial.Protocol
	Rows      []Row
	Stats     []Stats
}

// Build shapes matrix into a report. Rows follow the order of snrLevels and
// columns the order of protocols, exactly as configured; the matrix itself is
// unordered.
func Build(matrix *sweep.Matrix, protocols []trial.Protocol, snrLevels []float64) Report {
	rep := Report{Protocols: append([]trial.Protocol(nil), protocols...)}

	for _, level := range snrLevels {
		row := Row{SNRLevel: level, Cells: make([]CellStatus, 0, len(protocols))}
		for _, protocol := range protocols {
			cell, ok := matrix.Cell(protocol, level)
			switch {
			case !ok:
				row.Cells = append(row.Cells, StatusMissing)
			case cell.Success():
				row.Cells = append(row.Cells, StatusPass)
			default:
				row.Cells = append(row.Cells, StatusFail)
			}
		}
		rep.Rows = append(rep.Rows, row)
	}

	for _, protocol := range protocols {
		rep.Stats = append(rep.Stats, buildStats(matrix, protocol, snrLevels))
	}
	return rep
}

func buildStats(matrix *sweep.Matrix, protocol trial.Protocol, snrLevels []float64) Stats {
	st := Stats{Protocol: protocol}
	for _, level := range snrLevels {
		cell, ok := matrix.Cell(protocol, level)
		if !ok {
			continue
		}
		st.Cells++
		if !cell.Success() {
			continue
		}
		st.Passes++
		if st.MinWorkingSNR == nil || level < *st.MinWorkingSNR {
			l := level
			st.MinWorkingSNR = &l
		}
	}
	if st.Cells > 0 {
		st.Rate = float64(st.Passes) / float64(st.Cells)
	}
	return st
}
