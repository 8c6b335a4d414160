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
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/fitengage/fitimport/internal/ioimport"
	"github.com/fitengage/fitimport/internal/iostore"
	"github.com/fitengage/fitimport/pkg/config"
	"github.com/gnames/gn"
)

// runImport opens the store named by cfg, imports the CSV file and
// closes the store. Import messages are written to out.
func runImport(ctx context.Context, cfg *config.Config, out io.Writer) error {
	st, err := iostore.Open(ctx, cfg.Import.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	slog.Info("Connected to database", "db", iostore.Redact(cfg.Import.DBPath))

	imp := ioimport.New(cfg, st, out)
	sum, err := imp.Import(ctx)
	if err != nil {
		return err
	}

	if sum.Skipped > 0 {
		gn.Warn(
			"Skipped <warn>%s</warn> of %s rows",
			humanize.Comma(int64(sum.Skipped)),
			humanize.Comma(int64(sum.Total())),
		)
		if cfg.Import.ReportPath != "" {
			gn.Info("Skipped rows are listed in <em>%s</em>", cfg.Import.ReportPath)
		}
	}
	gn.Info(
		"Imported <em>%s</em> members into <em>%s</em>",
		humanize.Comma(int64(sum.Inserted)),
		iostore.Redact(cfg.Import.DBPath),
	)
	return nil
}
