package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rubythedev/data-analysis-and-visualization/internal/analysis"
)

var (
	statsHeaders  []string
	statsRows     []int
	statsExtended bool
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Compute descriptive statistics for selected columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable(args[0])
		if err != nil {
			return err
		}
		headers := statsHeaders
		if len(headers) == 0 {
			headers = tbl.Headers()
		}
		return renderStats(analysis.New(tbl), headers, statsRows, statsExtended)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringSliceVar(&statsHeaders, "headers", nil, "columns to analyze (default: all)")
	statsCmd.Flags().IntSliceVar(&statsRows, "rows", nil, "row indices to restrict the computation to (default: all)")
	statsCmd.Flags().BoolVar(&statsExtended, "extended", false, "also report median and quartiles")
}

// renderStats prints one row of aggregates per selected header.
func renderStats(a *analysis.Analysis, headers []string, rows []int, extended bool) error {
	mins, maxes, err := a.Range(headers, rows)
	if err != nil {
		return err
	}
	means, err := a.Mean(headers, rows)
	if err != nil {
		return err
	}
	vars, err := a.Var(headers, rows)
	if err != nil {
		return err
	}
	stds, err := a.Std(headers, rows)
	if err != nil {
		return err
	}
	var medians, p25, p75 []float64
	if extended {
		if medians, err = a.Median(headers, rows); err != nil {
			return err
		}
		if p25, err = a.Percentile(headers, 0.25, rows); err != nil {
			return err
		}
		if p75, err = a.Percentile(headers, 0.75, rows); err != nil {
			return err
		}
	}

	tw := tablewriter.NewWriter(os.Stdout)
	head := []string{"Header", "Min", "Max", "Mean", "Var", "Std"}
	if extended {
		head = append(head, "Median", "P25", "P75")
	}
	tw.SetHeader(head)
	for i, h := range headers {
		row := []string{h, formatValue(mins[i]), formatValue(maxes[i]), formatValue(means[i]), formatValue(vars[i]), formatValue(stds[i])}
		if extended {
			row = append(row, formatValue(medians[i]), formatValue(p25[i]), formatValue(p75[i]))
		}
		tw.Append(row)
	}
	tw.Render()
	return nil
}
