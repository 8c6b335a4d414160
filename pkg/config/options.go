package config

import (
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptImportDBPath sets the database location: a SQLite file path or a
// postgres:// URL.
// Runtime-only field - not in ToOptions().
func OptImportDBPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Import.DBPath = s
		}
	}
}

// OptImportCSVPath sets the CSV file to import.
// Runtime-only field - not in ToOptions().
func OptImportCSVPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("CSV Path", s) {
			c.Import.CSVPath = s
		}
	}
}

// OptImportReportPath sets where the YAML summary is written.
// Runtime-only field - not in ToOptions().
func OptImportReportPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Path", s) {
			c.Import.ReportPath = s
		}
	}
}

// OptImportEmailDomain sets the domain of generated placeholder emails.
// A leading '@' is removed.
func OptImportEmailDomain(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "@")
	s = strings.ToLower(s)
	return func(c *Config) {
		if !isValidString("Email Domain", s) {
			return
		}
		if strings.ContainsAny(s, "@ ") {
			gn.Warn("<em>Email Domain</em> '%s' is not a domain, ignoring", s)
			return
		}
		c.Import.EmailDomain = s
	}
}

// OptImportMembershipTypeID sets the membership type assigned to every
// imported member. Uses pointer to distinguish between unset (nil) and
// a value.
func OptImportMembershipTypeID(i *int64) Option {
	return func(c *Config) {
		if i == nil {
			return
		}
		if isValidInt("Membership Type ID", int(*i)) {
			id := *i
			c.Import.MembershipTypeID = &id
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
