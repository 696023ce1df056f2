package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutputDir    string  `mapstructure:"output_dir" yaml:"output_dir"`
	FigureWidth  int     `mapstructure:"figure_width" yaml:"figure_width"`
	FigureHeight int     `mapstructure:"figure_height" yaml:"figure_height"`
	PairPlotSize int     `mapstructure:"pair_plot_size" yaml:"pair_plot_size"`
	FontSize     float64 `mapstructure:"font_size" yaml:"font_size"`
	DotWidth     float64 `mapstructure:"dot_width" yaml:"dot_width"`
	DotColor     string  `mapstructure:"dot_color" yaml:"dot_color"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.dataviz/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataviz")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAVIZ")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "figures")
	v.SetDefault("figure_width", 1200)
	v.SetDefault("figure_height", 800)
	v.SetDefault("pair_plot_size", 1200)
	v.SetDefault("font_size", 18.0)
	v.SetDefault("dot_width", 4.0)
	v.SetDefault("dot_color", "red")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataviz")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
