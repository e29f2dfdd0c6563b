package main

import (
	"github.com/spf13/cobra"

	"github.com/fpeterek/strojove-uceni/internal/combin"
	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/report"
)

func genCombinationsCmd() *cobra.Command {
	var begin, end, elements int

	cmd := &cobra.Command{
		Use:   "gen-combinations",
		Short: "Print every k-element combination of an integer range",
		Long: `Print every combination of --elements values drawn from the inclusive range
[--begin, --end], one per line, in lexicographic order.

Example:
  apriori gen-combinations --begin 1 --end 4 --elements 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if end < begin {
				return common.InvalidParameter("end", "must not be below begin (%d), got %d", begin, end)
			}
			if n := end - begin + 1; elements < 1 || elements > n {
				return common.InvalidParameter("elements", "must be between 1 and %d, got %d", n, elements)
			}

			count, err := report.WriteCombinations(cmd.OutOrStdout(), combin.RangeSeq(begin, end, elements))
			if err != nil {
				return err
			}

			common.LogDebug("Generated combinations", common.Fields{
				"begin":    begin,
				"end":      end,
				"elements": elements,
				"count":    count,
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&begin, "begin", 0, "first value of the range (inclusive)")
	cmd.Flags().IntVar(&end, "end", 0, "last value of the range (inclusive)")
	cmd.Flags().IntVar(&elements, "elements", 0, "number of values per combination")
	_ = cmd.MarkFlagRequired("begin")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("elements")

	return cmd
}
