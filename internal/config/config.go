// File internal/config/config.go
package config

import (
	"flag"

	"github.com/spf13/viper"
)

// Config holds the engine's tunable parameters: search node budgets,
// transposition table size, a default variant name, the diagnostics
// log level, and the GUI/GEXF toggles. DefaultVariant is loaded but
// cmd/hexchess does not read it: the variant always comes from the
// setup line.
type Config struct {
	NodeBudget       int    `mapstructure:"NODE_BUDGET"`
	PonderNodeBudget int    `mapstructure:"PONDER_NODE_BUDGET"`
	TTSizeLog2       int    `mapstructure:"TT_SIZE_LOG2"`
	DefaultVariant   string `mapstructure:"DEFAULT_VARIANT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	GUIEnabled       bool   `mapstructure:"GUI_ENABLED"`
	GEXFEnabled      bool   `mapstructure:"GEXF_ENABLED"`
}

// defaults mirror the original command line's hard-coded constants
// (1000 nodes per move, 100000 while pondering) so a config file is
// optional rather than required.
func defaults() Config {
	return Config{
		NodeBudget:       1000,
		PonderNodeBudget: 100000,
		TTSizeLog2:       18,
		DefaultVariant:   "glinski",
		LogLevel:         "info",
		GUIEnabled:       false,
		GEXFEnabled:      true,
	}
}

// Load layers, from lowest to highest priority: built-in defaults,
// an optional config file (cfgPath, if non-empty), then command-line
// flags — the same flag+viper split the rest of the corpus uses
// between ad-hoc flag.Parse() entrypoints and viper-backed services.
func Load(cfgPath string, args []string) (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetDefault("NODE_BUDGET", cfg.NodeBudget)
	v.SetDefault("PONDER_NODE_BUDGET", cfg.PonderNodeBudget)
	v.SetDefault("TT_SIZE_LOG2", cfg.TTSizeLog2)
	v.SetDefault("DEFAULT_VARIANT", cfg.DefaultVariant)
	v.SetDefault("LOG_LEVEL", cfg.LogLevel)
	v.SetDefault("GUI_ENABLED", cfg.GUIEnabled)
	v.SetDefault("GEXF_ENABLED", cfg.GEXFEnabled)

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, err
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("hexchess", flag.ContinueOnError)
	nodeBudget := fs.Int("node-budget", cfg.NodeBudget, "nodes searched per move")
	ponderBudget := fs.Int("ponder-node-budget", cfg.PonderNodeBudget, "nodes searched while pondering")
	ttSize := fs.Int("tt-size-log2", cfg.TTSizeLog2, "transposition table size as a power of two")
	variant := fs.String("variant", cfg.DefaultVariant, "default variant: glinski, mccooey or hexofen")
	logLevel := fs.String("log-level", cfg.LogLevel, "zap log level")
	guiEnabled := fs.Bool("gui", cfg.GUIEnabled, "start the ebiten board viewer")
	gexfEnabled := fs.Bool("gexf", cfg.GEXFEnabled, "export each move's search tree as GEXF")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.NodeBudget = *nodeBudget
	cfg.PonderNodeBudget = *ponderBudget
	cfg.TTSizeLog2 = *ttSize
	cfg.DefaultVariant = *variant
	cfg.LogLevel = *logLevel
	cfg.GUIEnabled = *guiEnabled
	cfg.GEXFEnabled = *gexfEnabled
	return cfg, nil
}
