package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"chirpbench/internal/modem"
)

func newProtocolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the codec's transmission profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Protocol", "Symbol", "Repeat", "Capacity", "Bit rate", "Tone band"}
			rows := make([][]string, 0, len(modem.Protocols()))
			for _, p := range modem.Protocols() {
				info, ok := modem.ProtocolInfo(p)
				if !ok {
					continue
				}
				rows = append(rows, []string{
					string(info.Protocol),
					strconv.Itoa(info.SymbolLen),
					strconv.Itoa(info.Repeat),
					fmt.Sprintf("%d B", info.MaxPayload),
					fmt.Sprintf("%.0f bps", info.BitRate),
					fmt.Sprintf("%.0f-%.0f Hz", info.ToneLow, info.ToneHigh),
				})
			}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}
}
