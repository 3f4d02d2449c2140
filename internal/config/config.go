package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/ledgerlens/ledgerlens/internal/importer"
)

// FileName is the default config file written by init.
const FileName = "ledgerlens.yaml"

// candidates are checked in order by Find.
var candidates = []string{"ledgerlens.yaml", "ledgerlens.yml", "ledgerlens.toml"}

// Config represents the top-level workspace configuration.
type Config struct {
	Statement StatementConfig `yaml:"statement" toml:"statement"`
	Display   DisplayConfig   `yaml:"display" toml:"display"`
	Import    ImportConfig    `yaml:"import" toml:"import"`
}

// StatementConfig describes the layout of incoming bank statements.
type StatementConfig struct {
	Format         string   `yaml:"format" toml:"format"`
	HeaderMarkers  []string `yaml:"header_markers" toml:"header_markers"`
	IncomeKeyword  string   `yaml:"income_keyword" toml:"income_keyword"`
	CurrencySymbol string   `yaml:"currency_symbol" toml:"currency_symbol"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency" toml:"currency"` // ISO 4217 code
}

// ImportConfig controls the import command.
type ImportConfig struct {
	AutoMarkProcessed bool `yaml:"auto_mark_processed" toml:"auto_mark_processed"`
}

// Load reads a config file from disk. The format follows the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// Save writes a Config to disk in the format matching the extension.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		data, err = toml.Marshal(*cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Find returns the first config file present in root.
func Find(root string) (string, error) {
	for _, name := range candidates {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("no config in %s: %w", root, os.ErrNotExist)
}

// LoadWorkspace loads the config found in root, falling back to Default
// when the workspace has none.
func LoadWorkspace(root string) (*Config, error) {
	path, err := Find(root)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Default returns a Config for Kaspi statements displayed in tenge.
func Default() *Config {
	return &Config{
		Statement: StatementConfig{
			Format:         "kaspi",
			HeaderMarkers:  append([]string(nil), importer.DefaultHeaderMarkers...),
			IncomeKeyword:  importer.DefaultIncomeKeyword,
			CurrencySymbol: importer.DefaultCurrency,
		},
		Display: DisplayConfig{Currency: "KZT"},
		Import:  ImportConfig{AutoMarkProcessed: true},
	}
}

// fillDefaults restores statement and display settings a partial file left
// empty. Booleans are taken as written.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Statement.Format == "" {
		c.Statement.Format = d.Statement.Format
	}
	if len(c.Statement.HeaderMarkers) == 0 {
		c.Statement.HeaderMarkers = d.Statement.HeaderMarkers
	}
	if c.Statement.IncomeKeyword == "" {
		c.Statement.IncomeKeyword = d.Statement.IncomeKeyword
	}
	if c.Statement.CurrencySymbol == "" {
		c.Statement.CurrencySymbol = d.Statement.CurrencySymbol
	}
	if c.Display.Currency == "" {
		c.Display.Currency = d.Display.Currency
	}
}

// ConfigureKaspi applies the statement section to a parser.
func (c *Config) ConfigureKaspi(p *importer.KaspiParser) {
	p.HeaderMarkers = append([]string(nil), c.Statement.HeaderMarkers...)
	p.IncomeKeyword = c.Statement.IncomeKeyword
	p.Currency = c.Statement.CurrencySymbol
}
