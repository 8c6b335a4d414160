// Package ioimport implements the fitimport.Importer interface. It reads
// a member export, derives member rows and writes them through a
// db.Store.
// This is an impure I/O package.
package ioimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fitengage/fitimport/internal/iocsv"
	"github.com/fitengage/fitimport/internal/iofs"
	"github.com/fitengage/fitimport/internal/iostore"
	fitimport "github.com/fitengage/fitimport/pkg"
	"github.com/fitengage/fitimport/pkg/config"
	"github.com/fitengage/fitimport/pkg/db"
	"github.com/fitengage/fitimport/pkg/member"
	"github.com/gnames/gnfmt"
)

// CompleteMsg is printed after the final commit.
const CompleteMsg = "Data import complete!"

// importer implements the Importer interface.
type importer struct {
	cfg     *config.Config
	store   db.Store
	out     io.Writer
	builder member.Builder
}

// New creates a new Importer. Diagnostics for skipped rows and the
// completion message go to out. The caller owns the store and closes
// it after Import returns.
func New(cfg *config.Config, st db.Store, out io.Writer) fitimport.Importer {
	return &importer{
		cfg:   cfg,
		store: st,
		out:   out,
		builder: member.NewBuilder(
			cfg.Import.EmailDomain,
			cfg.Import.MembershipTypeID,
		),
	}
}

// Import inserts every row of the CSV file. Rows rejected by a database
// constraint are reported and skipped, any other failure stops the
// import and nothing is committed.
func (im *importer) Import(ctx context.Context) (*member.Summary, error) {
	if im.store == nil {
		return nil, NotConnectedError()
	}

	startTime := time.Now()
	path := im.cfg.Import.CSVPath
	slog.Info("Starting member import",
		"csv", path,
		"db", iostore.Redact(im.cfg.Import.DBPath),
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	var src io.Reader = f
	bar := newProgressBar(f)
	if bar != nil {
		src = bar.NewProxyReader(f)
		defer bar.Finish()
	}

	rows, err := iocsv.New(src)
	if err != nil {
		return nil, err
	}

	res := &member.Summary{}
	for {
		rec, line, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		o, err := im.insert(ctx, line, im.builder.Build(rec))
		if err != nil {
			return nil, err
		}
		res.Add(o)
	}

	if err = im.store.Commit(ctx); err != nil {
		return nil, err
	}
	if bar != nil {
		bar.Finish()
	}
	fmt.Fprintln(im.out, CompleteMsg)

	slog.Info("Member import complete",
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"total", res.Total(),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)

	if im.cfg.Import.ReportPath != "" {
		if err = writeReport(im.cfg.Import.ReportPath, res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// insert writes one member. A constraint violation becomes a skipped
// Outcome, other errors are returned.
func (im *importer) insert(
	ctx context.Context,
	line int,
	m member.Member,
) (member.Outcome, error) {
	res := member.Outcome{Line: line, Name: m.Name}

	err := im.store.Insert(ctx, m)
	if err == nil {
		res.Status = member.Inserted
		return res, nil
	}
	if !iostore.IsConstraint(err) {
		return res, err
	}

	cause := iostore.Cause(err)
	fmt.Fprintf(im.out, "Skipping row due to error: %v\n", cause)
	slog.Warn("Skipping row",
		"line", line,
		"name", m.Name,
		"error", cause,
	)

	res.Status = member.Skipped
	res.Reason = cause.Error()
	return res, nil
}
