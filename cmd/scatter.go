package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubythedev/data-analysis-and-visualization/internal/analysis"
)

var (
	scatterX     string
	scatterY     string
	scatterTitle string
	scatterOut   string
)

var scatterCmd = &cobra.Command{
	Use:   "scatter <file>",
	Short: "Render a scatter plot of two columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable(args[0])
		if err != nil {
			return err
		}
		a := analysis.NewWithGallery(tbl, newGallery(scatterOut))
		o := plotOptions()
		o.Title = scatterTitle
		if o.Title == "" {
			o.Title = fmt.Sprintf("%s vs %s", scatterY, scatterX)
		}
		xs, _, err := a.Scatter(scatterX, scatterY, o)
		if err != nil {
			return err
		}
		paths, err := a.Show()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Plotted %d points to %s\n", len(xs), paths[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)
	scatterCmd.Flags().StringVarP(&scatterX, "x-header", "x", "", "column for the x axis")
	scatterCmd.Flags().StringVarP(&scatterY, "y-header", "y", "", "column for the y axis")
	scatterCmd.Flags().StringVar(&scatterTitle, "title", "", "figure title (default: \"<y> vs <x>\")")
	scatterCmd.Flags().StringVarP(&scatterOut, "output-dir", "o", "", "directory for rendered figures (default: config output_dir)")
	_ = scatterCmd.MarkFlagRequired("x-header")
	_ = scatterCmd.MarkFlagRequired("y-header")
}
