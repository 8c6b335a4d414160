/*
Copyright © 2025 FitEngage

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fitengage/fitimport/internal/iofs"
	"github.com/fitengage/fitimport/internal/iologger"
	app "github.com/fitengage/fitimport/pkg"
	"github.com/fitengage/fitimport/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the fitimport command.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	var flags importFlags

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "fitimport",
		Short:   "Imports gym members from a CSV export into the members table",
		Long: `fitimport reads a CSV export of gym members and inserts one row per
member into the members table of a SQLite file or a PostgreSQL database.

Required CSV columns:
  First Name, Last Name, Membership Renewal, Membership Expiry Date,
  Notes, Notes.1, Notes.2

Rows that break a database constraint (for example a duplicate name) are
reported and skipped. Every other error aborts the import and nothing is
written.

Configuration precedence (highest to lowest):
  1. CLI flags (--db, --csv, --report)
  2. Environment variables (FITIMPORT_*)
  3. Config file (~/.config/fitimport/config.yaml)
  4. Built-in defaults

Environment Variables:
  FITIMPORT_IMPORT_EMAIL_DOMAIN        Domain of generated emails
  FITIMPORT_IMPORT_MEMBERSHIP_TYPE_ID  Membership type of imported members
  FITIMPORT_LOG_LEVEL                  Log level (debug/info/warn/error)
  FITIMPORT_LOG_FORMAT                 Log format (json/text)
  FITIMPORT_LOG_DESTINATION            Log destination (file/stderr/stdout)

Examples:
  # Import into a SQLite file
  fitimport --db gym.db --csv members.csv

  # Import into PostgreSQL and keep a report of skipped rows
  fitimport --db postgres://gym@localhost/gym --csv members.csv \
    --report skipped.yaml`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flags.options(cmd))
			err := runImport(cmd.Context(), cfg, cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags.register(rootCmd)

	// Remove the automatic "fitimport version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for fitimport")

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute runs the root command.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// errors from the import are already printed by gn
		var gnErr *gn.Error
		if !errors.As(err, &gnErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("FITIMPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Import configuration
	_ = v.BindEnv("import.email_domain", "FITIMPORT_IMPORT_EMAIL_DOMAIN")
	_ = v.BindEnv("import.membership_type_id", "FITIMPORT_IMPORT_MEMBERSHIP_TYPE_ID")

	// Log configuration
	_ = v.BindEnv("log.level", "FITIMPORT_LOG_LEVEL")
	_ = v.BindEnv("log.format", "FITIMPORT_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "FITIMPORT_LOG_DESTINATION")

	v.AutomaticEnv()
}
