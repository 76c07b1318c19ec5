package main

import (
	"fmt"
	"io"
	"strconv"

	"chirpbench/internal/report"
	"chirpbench/internal/trial"
)

func printMatrix(out io.Writer, rep report.Report) {
	headers := make([]string, 0, len(rep.Protocols)+1)
	headers = append(headers, "SNR (dB)")
	for _, p := range rep.Protocols {
		headers = append(headers, string(p))
	}

	rows := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, formatLevel(row.SNRLevel))
		for _, status := range row.Cells {
			cells = append(cells, colorizeStatus(string(status), status == report.StatusPass))
		}
		rows = append(rows, cells)
	}

	aligns := make([]columnAlignment, len(headers))
	aligns[0] = alignRight
	fmt.Fprintln(out, "Resilience matrix:")
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	fmt.Fprintln(out)
}

func printStats(out io.Writer, rep report.Report) {
	headers := []string{"Protocol", "Passed", "Rate", "Min working SNR"}
	rows := make([][]string, 0, len(rep.Stats))
	for _, st := range rep.Stats {
		minSNR := "n/a"
		if st.MinWorkingSNR != nil {
			minSNR = formatLevel(*st.MinWorkingSNR) + " dB"
		}
		rows = append(rows, []string{
			string(st.Protocol),
			fmt.Sprintf("%d/%d", st.Passes, st.Cells),
			fmt.Sprintf("%.0f%%", st.Rate*100),
			minSNR,
		})
	}
	fmt.Fprintln(out, "Per-protocol statistics:")
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight}))
}

func printSignalInfo(out io.Writer, codec trial.Codec, message []byte, protocols []trial.Protocol) {
	headers := []string{"Protocol", "RMS", "Range", "Samples", "Duration"}
	infos := report.CollectSignalInfo(codec, message, protocols)
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		if info.EncodeErr != nil {
			rows = append(rows, []string{string(info.Protocol), "-", "-", "-", fmt.Sprintf("encode failed: %v", info.EncodeErr)})
			continue
		}
		rows = append(rows, []string{
			string(info.Protocol),
			fmt.Sprintf("%.4f", info.RMS),
			fmt.Sprintf("[%.3f, %.3f]", info.MinSample, info.MaxSample),
			strconv.Itoa(info.Samples),
			fmt.Sprintf("%.2fs", info.Seconds),
		})
	}
	fmt.Fprintln(out, "Clean signal per protocol:")
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight}))
	fmt.Fprintln(out)
}

// formatLevel renders an SNR level without trailing zeros, e.g. 40, -10, 7.5.
func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}
