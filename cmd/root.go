package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	cfgpkg "github.com/rubythedev/data-analysis-and-visualization/internal/config"
	"github.com/rubythedev/data-analysis-and-visualization/internal/plot"
	"github.com/rubythedev/data-analysis-and-visualization/internal/table"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile    string
	sheetName  string
	sheetIndex int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dataviz",
	Short: "DataViz CLI: describe numeric datasets and plot them",
	Long: `DataViz is a CLI tool that loads numeric CSV or XLSX datasets, computes
descriptive statistics over selected columns and rows, and renders scatter
and pair-plot figures as PNG files.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataviz/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet-name", "", "XLSX: sheet name to load")
	rootCmd.PersistentFlags().IntVar(&sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// loadTable reads a dataset, dispatching on the file extension.
func loadTable(path string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return table.LoadXLSX(path, sheetName, sheetIndex)
	}
	return table.Load(path)
}

// plotOptions seeds render options from the loaded configuration.
func plotOptions() plot.Options {
	o := plot.DefaultOptions()
	if cfg == nil {
		return o
	}
	if cfg.FigureWidth > 0 {
		o.Width = cfg.FigureWidth
	}
	if cfg.FigureHeight > 0 {
		o.Height = cfg.FigureHeight
	}
	if cfg.FontSize > 0 {
		o.FontSize = cfg.FontSize
	}
	if cfg.DotWidth > 0 {
		o.DotWidth = cfg.DotWidth
	}
	if c, ok := namedColor(cfg.DotColor); ok {
		o.DotColor = c
	}
	return o
}

// newGallery builds the figure gallery for a command, preferring an explicit
// --output-dir over the configured one.
func newGallery(dir string) *plot.Gallery {
	if dir == "" && cfg != nil {
		dir = cfg.OutputDir
	}
	if dir == "" {
		dir = "figures"
	}
	return plot.NewGallery(nil, dir)
}

// namedColor maps a config color name onto a chart palette color.
func namedColor(name string) (drawing.Color, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return chart.ColorRed, true
	case "blue":
		return chart.ColorBlue, true
	case "green":
		return chart.ColorGreen, true
	case "black":
		return chart.ColorBlack, true
	case "orange":
		return chart.ColorOrange, true
	default:
		return drawing.Color{}, false
	}
}

// renderRows prints a numeric matrix with one column per header.
func renderRows(headers []string, rows [][]float64) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader(headers)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		tw.Append(cells)
	}
	tw.Render()
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
