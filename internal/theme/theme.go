// Package theme loads display configuration from an optional YAML file
// and turns it into lipgloss styles.
package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vegasq/fsql/internal/logger"
)

var log = logger.For("theme")

// Config is the on-disk shape of ~/.fsql.yaml. Every field is optional;
// missing or unrecognized values fall back to defaults.
type Config struct {
	Colors struct {
		Directory string `yaml:"directory"`
		File      string `yaml:"file"`
		Hidden    string `yaml:"hidden"`
		Header    string `yaml:"header"`
	} `yaml:"colors"`
	Format string `yaml:"format"`
}

// Theme holds resolved styles ready for rendering
type Theme struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Hidden    lipgloss.Style
	Header    lipgloss.Style
	Format    string
	NoColor   bool
}

var colorNames = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"grey":    "8",
	"gray":    "8",
}

// DefaultPath returns ~/.fsql.yaml, or "" when the home directory is
// unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fsql.yaml")
}

// Default is the theme used when no config file exists
func Default() *Theme {
	t := &Theme{Format: "table"}
	t.applyColors(Config{})
	return t
}

// Load reads a theme config. A missing file is not an error; a file
// that fails to parse is reported and replaced by defaults.
func Load(path string) *Theme {
	t := Default()
	if path == "" {
		return t
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("path", path).Err(err).Msg("cannot read theme config, using defaults")
		}
		return t
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("cannot parse theme config, using defaults")
		return t
	}

	if cfg.Format == "table" || cfg.Format == "json" || cfg.Format == "csv" {
		t.Format = cfg.Format
	} else if cfg.Format != "" {
		log.Warn().Str("format", cfg.Format).Msg("unknown format in theme config")
	}
	t.applyColors(cfg)
	return t
}

func (t *Theme) applyColors(cfg Config) {
	t.Directory = lipgloss.NewStyle().Foreground(resolveColor(cfg.Colors.Directory, "cyan"))
	t.File = lipgloss.NewStyle().Foreground(resolveColor(cfg.Colors.File, "white"))
	t.Hidden = lipgloss.NewStyle().Foreground(resolveColor(cfg.Colors.Hidden, "grey"))
	t.Header = lipgloss.NewStyle().Bold(true).Foreground(resolveColor(cfg.Colors.Header, "white"))
}

// resolveColor maps a color name to an ANSI lipgloss color, falling
// back to the default name when the configured one is unknown
func resolveColor(name, fallback string) lipgloss.Color {
	if code, ok := colorNames[name]; ok {
		return lipgloss.Color(code)
	}
	if name != "" {
		log.Warn().Str("color", name).Msg("unknown color in theme config")
	}
	return lipgloss.Color(colorNames[fallback])
}

// RenderHeader styles a table column title
func (t *Theme) RenderHeader(text string) string {
	if t.NoColor {
		return text
	}
	return t.Header.Render(text)
}

// Render styles an entry name for display. Hidden entries are dimmed,
// directories use the directory color.
func (t *Theme) Render(name string, isDir, hidden bool) string {
	if t.NoColor {
		return name
	}
	switch {
	case hidden:
		return t.Hidden.Render(name)
	case isDir:
		return t.Directory.Render(name)
	default:
		return t.File.Render(name)
	}
}
