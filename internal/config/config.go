package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/draftmsg/draftmsg/internal/classify"
)

// FileName is the config file base name, looked up as .draftmsg.yaml.
const FileName = ".draftmsg"

// Config is the effective tool configuration.
type Config struct {
	// Format selects the report writer: "text" or "json".
	Format string `yaml:"format"`
	// NoColor disables terminal styling in the text report.
	NoColor bool `yaml:"no_color"`
	// Keywords holds extra trigger keywords per category, merged into the
	// compiled-in table. Categories must come from the known set.
	Keywords map[string][]string `yaml:"keywords,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Format: "text"}
}

// Load builds the effective config by merging, lowest to highest precedence:
// defaults, .draftmsg.yaml (repo root, cwd, then home), DRAFTMSG_* env vars,
// and CLI flag overrides. A missing config file is not an error.
func Load(repoRoot string, overrides map[string]string) (Config, error) {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("no_color", false)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if repoRoot != "" {
		v.AddConfigPath(repoRoot)
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("DRAFTMSG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Format:   v.GetString("format"),
		NoColor:  v.GetBool("no_color"),
		Keywords: v.GetStringMapStringSlice("keywords"),
	}

	if f, ok := overrides["format"]; ok && f != "" {
		cfg.Format = f
	}
	if _, ok := overrides["no_color"]; ok {
		cfg.NoColor = true
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", c.Format)
	}
	for cat := range c.Keywords {
		if !classify.ValidCategory(classify.Category(cat)) {
			return fmt.Errorf("unknown keyword category %q in config", cat)
		}
	}
	return nil
}

// ExtraKeywords converts the configured keyword extensions to category keys.
// Load has already validated the category names.
func (c Config) ExtraKeywords() map[classify.Category][]string {
	if len(c.Keywords) == 0 {
		return nil
	}
	extra := make(map[classify.Category][]string, len(c.Keywords))
	for cat, kws := range c.Keywords {
		extra[classify.Category(cat)] = kws
	}
	return extra
}
