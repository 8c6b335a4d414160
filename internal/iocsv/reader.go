// Package iocsv reads member exports. It validates the header once and
// then yields rows as member.Record values keyed by column name.
package iocsv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fitengage/fitimport/pkg/member"
	"github.com/gnames/gnlib"
)

const bom = "\ufeff"

// Reader iterates over data rows of a member export.
type Reader struct {
	r      *csv.Reader
	header []string
	// empty is set for a file without a header, it has no rows.
	empty bool
	// index maps a column name to its position. With repeated names the
	// last column wins.
	index map[string]int
}

// New reads the header from r and checks that all member.Columns are
// present. An empty input gives a Reader without rows.
func New(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	// rows may be shorter or longer than the header
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Reader{r: cr, empty: true}, nil
	}
	if err != nil {
		return nil, HeaderError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	index := make(map[string]int, len(header))
	for i, v := range header {
		index[v] = i
	}

	var missing []string
	for _, v := range member.Columns {
		if _, ok := index[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, MissingColumnsError(missing)
	}

	res := &Reader{
		r:      cr,
		header: header,
		index:  index,
	}
	return res, nil
}

// Header returns column names as they appear in the file.
func (r *Reader) Header() []string {
	return r.header
}

// Read returns the next row and the line it starts on. It returns
// io.EOF after the last row. Columns missing at the end of a short row
// are empty strings, cells past the header are ignored.
func (r *Reader) Read() (member.Record, int, error) {
	if r.empty {
		return nil, 0, io.EOF
	}

	row, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.EOF
	}
	if err != nil {
		var line int
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.StartLine
		}
		return nil, line, RowError(line, err)
	}

	line, _ := r.r.FieldPos(0)

	res := make(member.Record, len(r.index))
	for k, i := range r.index {
		if i >= len(row) {
			res[k] = ""
			continue
		}
		res[k] = gnlib.FixUtf8(row[i])
	}
	return res, line, nil
}
