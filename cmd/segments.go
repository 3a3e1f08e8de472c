package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelworks/lcdgen/internal/segment"
)

func init() {
	rootCmd.AddCommand(segmentsCmd)
}

var segmentsCmd = &cobra.Command{
	Use:   "segments [7|16]",
	Short: "Print the segment encoding tables",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabets := []segment.Alphabet{segment.Seven, segment.Sixteen}
		if len(args) == 1 {
			switch args[0] {
			case "7":
				alphabets = []segment.Alphabet{segment.Seven}
			case "16":
				alphabets = []segment.Alphabet{segment.Sixteen}
			default:
				return fmt.Errorf("alphabet must be 7 or 16, got %q", args[0])
			}
		}

		out := cmd.OutOrStdout()
		for _, a := range alphabets {
			fmt.Fprintf(out, "%s (layer order: %s, point layer: %s)\n",
				a, strings.Join(a.LayerOrder(), " "), segment.PointName)
			table := segment.Table(a)
			chars := make([]rune, 0, len(table))
			for ch := range table {
				chars = append(chars, ch)
			}
			sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
			for _, ch := range chars {
				label := string(ch)
				if ch == ' ' {
					label = "(space)"
				}
				fmt.Fprintf(out, "  %-8s %s\n", label, strings.Join(table[ch], " "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
