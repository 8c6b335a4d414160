package cmd

import (
	"github.com/fitengage/fitimport/pkg/config"
	"github.com/spf13/cobra"
)

// importFlags keeps values of the command line flags.
type importFlags struct {
	db     string
	csv    string
	report string
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&f.db, "db", "",
		"SQLite file or postgres:// URL with the members table",
	)
	cmd.Flags().StringVar(
		&f.csv, "csv", "",
		"CSV export of members",
	)
	cmd.Flags().StringVar(
		&f.report, "report", "",
		"write a YAML report of skipped rows to this path",
	)
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("csv")
}

// options converts explicitly set flags to config options.
func (f *importFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("db") {
		res = append(res, config.OptImportDBPath(f.db))
	}
	if cmd.Flags().Changed("csv") {
		res = append(res, config.OptImportCSVPath(f.csv))
	}
	if cmd.Flags().Changed("report") {
		res = append(res, config.OptImportReportPath(f.report))
	}
	return res
}
