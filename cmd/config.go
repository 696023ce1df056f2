package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/rubythedev/data-analysis-and-visualization/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DataViz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("figure_width: %d\n", cfg.FigureWidth)
		fmt.Printf("figure_height: %d\n", cfg.FigureHeight)
		fmt.Printf("pair_plot_size: %d\n", cfg.PairPlotSize)
		fmt.Printf("font_size: %.1f\n", cfg.FontSize)
		fmt.Printf("dot_width: %.1f\n", cfg.DotWidth)
		fmt.Printf("dot_color: %s\n", cfg.DotColor)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_dir":
			cfg.OutputDir = val
		case "figure_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for figure_width: %v", val)
			}
			cfg.FigureWidth = i
		case "figure_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for figure_height: %v", val)
			}
			cfg.FigureHeight = i
		case "pair_plot_size":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for pair_plot_size: %v", val)
			}
			cfg.PairPlotSize = i
		case "font_size":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for font_size: %v", val)
			}
			cfg.FontSize = f
		case "dot_width":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for dot_width: %v", val)
			}
			cfg.DotWidth = f
		case "dot_color":
			if _, ok := namedColor(val); !ok {
				return fmt.Errorf("invalid dot_color: %s (use red, blue, green, black, or orange)", val)
			}
			cfg.DotColor = strings.ToLower(strings.TrimSpace(val))
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
