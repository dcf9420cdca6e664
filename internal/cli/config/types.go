// Package config provides configuration management for the mulscan CLI.
package config

import "github.com/leapstack-labs/mulscan/pkg/scan"

// Config holds all CLI configuration options.
type Config struct {
	Input          string `koanf:"input"`
	ReportsPath    string `koanf:"reports"`
	ExamplesFile   string `koanf:"examples_file"`
	NoExamples     bool   `koanf:"no_examples"`
	LiteralMarkers bool   `koanf:"literal_markers"`
	IgnoreToggles  bool   `koanf:"ignore_toggles"`
	Verbose        bool   `koanf:"verbose"`
	OutputFormat   string `koanf:"output"`
}

// ScanOptions returns the scanner options selected by the configuration.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		LiteralMarkers: c.LiteralMarkers,
		IgnoreToggles:  c.IgnoreToggles,
	}
}

// Default configuration values.
const (
	DefaultInput   = "input.txt"
	DefaultReports = "input.txt"
	DefaultOutput  = "text"
	EnvPrefix      = "MULSCAN_"
)

// configFileNames are searched in the working directory when no explicit
// config file is given.
var configFileNames = []string{"mulscan.yaml", "mulscan.yml"}
