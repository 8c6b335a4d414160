// Package config provides configuration management for fitimport.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Import: email_domain, membership_type_id
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.DBPath, CSVPath, ReportPath
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use FITIMPORT_ prefix with underscores for nesting:
//
//	FITIMPORT_IMPORT_EMAIL_DOMAIN=fitengage.com
//	FITIMPORT_IMPORT_MEMBERSHIP_TYPE_ID=1
//	FITIMPORT_LOG_LEVEL=info
package config

import (
	"github.com/fitengage/fitimport/pkg/member"
)

// Config represents the complete fitimport configuration.
type Config struct {
	// Import contains settings of a member import run.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ImportConfig contains settings of a member import run.
type ImportConfig struct {
	// DBPath is a SQLite file path or a postgres:// URL of the database
	// that holds the members table.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// CSVPath is the member export to import.
	CSVPath string `mapstructure:"csv_path" yaml:"csv_path"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `mapstructure:"report_path" yaml:"report_path"`

	// EmailDomain is the domain of generated placeholder emails.
	EmailDomain string `mapstructure:"email_domain" yaml:"email_domain"`

	// MembershipTypeID is written to membership_type_id of every
	// imported member. Nil keeps the column NULL.
	MembershipTypeID *int64 `mapstructure:"membership_type_id" yaml:"membership_type_id"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Import: ImportConfig{
			EmailDomain: member.DefaultEmailDomain,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// the file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
