package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rubythedev/data-analysis-and-visualization/internal/analysis"
)

var (
	anaHeaders []string
	anaLimit   []int
	anaScatter []string
	anaPair    bool
	anaOut     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run a full analysis: summary, statistics, and figures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable(args[0])
		if err != nil {
			return err
		}
		if len(anaLimit) > 0 {
			if len(anaLimit) != 2 {
				return fmt.Errorf("--limit wants start,end, got %v", anaLimit)
			}
			tbl.LimitSamples(anaLimit[0], anaLimit[1])
		}
		headers := anaHeaders
		if len(headers) == 0 {
			headers = tbl.Headers()
		}

		fmt.Println(tbl.String())
		fmt.Println()

		a := analysis.NewWithGallery(tbl, newGallery(anaOut))
		if err := renderStats(a, headers, nil, true); err != nil {
			return err
		}

		if anaPair {
			o := plotOptions()
			o.Title = "Pair Plot"
			if cfg != nil && cfg.PairPlotSize > 0 {
				o.Width, o.Height = cfg.PairPlotSize, cfg.PairPlotSize
			}
			if _, err := a.PairPlot(headers, o); err != nil {
				return err
			}
		}
		for _, pair := range anaScatter {
			x, y, ok := strings.Cut(pair, ",")
			if !ok {
				return fmt.Errorf("--scatter wants x,y pairs, got %q", pair)
			}
			o := plotOptions()
			o.Title = fmt.Sprintf("%s vs %s", y, x)
			if _, _, err := a.Scatter(x, y, o); err != nil {
				return err
			}
			r, err := a.Correlation(x, y, nil)
			if err != nil {
				return err
			}
			fmt.Printf("r(%s, %s) = %.3f\n", x, y, r)
		}

		paths, err := a.Show()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("✓ Saved %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSliceVar(&anaHeaders, "headers", nil, "columns to analyze (default: all)")
	analyzeCmd.Flags().IntSliceVar(&anaLimit, "limit", nil, "restrict the table to rows [start,end) before analyzing")
	analyzeCmd.Flags().StringArrayVar(&anaScatter, "scatter", nil, "x,y column pair to scatter (repeatable)")
	analyzeCmd.Flags().BoolVar(&anaPair, "pair-plot", true, "render a pair plot of the selected columns")
	analyzeCmd.Flags().StringVarP(&anaOut, "output-dir", "o", "", "directory for rendered figures (default: config output_dir)")
}
