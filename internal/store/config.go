package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BoardsDir    string `yaml:"boards_dir"`
	DefaultBoard string `yaml:"default_board"`

	Broker struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"broker"`

	Quotes struct {
		BaseURL        string `yaml:"base_url"`
		ProxyURL       string `yaml:"proxy_url"`
		Interval       string `yaml:"interval"`
		Range          string `yaml:"range"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"quotes"`

	DefaultSymbol string            `yaml:"default_symbol"`
	SymbolMap     map[string]string `yaml:"symbol_map"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`

	Fetchers int `yaml:"fetchers"`
}

func (c *Config) Validate() error {
	if c.Broker.BaseURL == "" {
		return errors.New("broker.base_url cannot be empty")
	}
	if c.Quotes.BaseURL == "" {
		return errors.New("quotes.base_url cannot be empty")
	}
	if len(c.SymbolMap) == 0 {
		return errors.New("symbol_map cannot be empty")
	}
	if _, ok := c.SymbolMap[c.DefaultSymbol]; !ok {
		return fmt.Errorf("default_symbol '%s' is not present in symbol_map", c.DefaultSymbol)
	}
	if c.Fetchers <= 0 {
		return fmt.Errorf("fetchers must be positive, got %d", c.Fetchers)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.BoardsDir == "" {
		c.BoardsDir = "boards"
	}
	if c.DefaultBoard == "" {
		c.DefaultBoard = "default"
	}
	if c.Broker.TimeoutSeconds == 0 {
		c.Broker.TimeoutSeconds = 30
	}
	if c.Quotes.TimeoutSeconds == 0 {
		c.Quotes.TimeoutSeconds = 30
	}
	if c.Quotes.Interval == "" {
		c.Quotes.Interval = "1m"
	}
	if c.Quotes.Range == "" {
		c.Quotes.Range = "5d"
	}
	if c.DefaultSymbol == "" {
		c.DefaultSymbol = "F.US.EP"
	}
	if len(c.SymbolMap) == 0 {
		c.SymbolMap = DefaultSymbolMap()
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "out"
	}
	if c.Fetchers == 0 {
		c.Fetchers = 4
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultSymbolMap maps broker instrument ids to the reference feed tickers
// used for the chart price line.
func DefaultSymbolMap() map[string]string {
	return map[string]string{
		"F.US.EP":  "ES=F",
		"F.US.MES": "ES=F",
		"F.US.ENQ": "NQ=F",
		"F.US.MNQ": "NQ=F",
		"F.US.GCE": "GC=F",
		"F.US.MGC": "GC=F",
		"F.US.CLE": "CL=F",
	}
}
