package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubythedev/data-analysis-and-visualization/internal/analysis"
)

var (
	pairHeaders []string
	pairTitle   string
	pairOut     string
)

var pairplotCmd = &cobra.Command{
	Use:   "pairplot <file>",
	Short: "Render a grid of scatter subplots for selected columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable(args[0])
		if err != nil {
			return err
		}
		headers := pairHeaders
		if len(headers) == 0 {
			headers = tbl.Headers()
		}
		a := analysis.NewWithGallery(tbl, newGallery(pairOut))
		o := plotOptions()
		o.Title = pairTitle
		if cfg != nil && cfg.PairPlotSize > 0 {
			o.Width, o.Height = cfg.PairPlotSize, cfg.PairPlotSize
		}
		if _, err := a.PairPlot(headers, o); err != nil {
			return err
		}
		paths, err := a.Show()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Rendered %dx%d pair plot to %s\n", len(headers), len(headers), paths[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pairplotCmd)
	pairplotCmd.Flags().StringSliceVar(&pairHeaders, "headers", nil, "columns to pair (default: all)")
	pairplotCmd.Flags().StringVar(&pairTitle, "title", "Pair Plot", "figure title")
	pairplotCmd.Flags().StringVarP(&pairOut, "output-dir", "o", "", "directory for rendered figures (default: config output_dir)")
}
