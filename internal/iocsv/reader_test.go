package iocsv_test

import (
	"io"
	"strings"
	"testing"

	"github.com/fitengage/fitimport/internal/iocsv"
	"github.com/fitengage/fitimport/pkg/errcode"
	"github.com/fitengage/fitimport/pkg/member"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "First Name,Last Name,Membership Renewal,Membership Expiry Date,Notes,Notes.1,Notes.2\n"

func TestRead(t *testing.T) {
	data := header +
		"Jane,Doe,2024-01-01,2025-01-01,VIP,,\n" +
		"\n" +
		",Smith,,,,,\n" +
		"\"Multi\nLine\",Name,,,\"a, b\",,\n" +
		"Last,Row,,,,,\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, member.Columns, r.Header())

	rec, line, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, line)
	assert.Equal(t, "Jane", rec[member.ColFirstName])
	assert.Equal(t, "VIP", rec[member.ColNotes])
	assert.Equal(t, "", rec[member.ColNotes2])

	rec, line, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 4, line, "blank lines are skipped")
	assert.Equal(t, "", rec[member.ColFirstName])
	assert.Equal(t, "Smith", rec[member.ColLastName])

	rec, line, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 5, line)
	assert.Equal(t, "Multi\nLine", rec[member.ColFirstName])
	assert.Equal(t, "a, b", rec[member.ColNotes])

	_, line, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 7, line)

	_, _, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNew_ExtraColumnsAndOrder(t *testing.T) {
	data := "Email,Notes.2,Notes.1,Notes,Membership Expiry Date," +
		"Membership Renewal,Last Name,First Name\n" +
		"x@y.z,c,b,a,2025,2024,Doe,Jane\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)

	rec, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Jane", rec[member.ColFirstName])
	assert.Equal(t, "a", rec[member.ColNotes])
	assert.Equal(t, "c", rec[member.ColNotes2])
	assert.Equal(t, "x@y.z", rec["Email"])
}

func TestNew_DuplicateColumnLastWins(t *testing.T) {
	data := strings.TrimSuffix(header, "\n") + ",Notes\n" +
		"Jane,Doe,,,first,,,second\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)

	rec, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", rec[member.ColNotes])
}

func TestNew_BOM(t *testing.T) {
	data := "\ufeff" + header + "Jane,Doe,,,,,\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)

	rec, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Jane", rec[member.ColFirstName])
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code gn.ErrorCode
		text string
	}{
		{
			name: "missing columns",
			data: "First Name,Last Name,Notes\n",
			code: errcode.CSVMissingColumnsError,
			text: "Membership Renewal, Membership Expiry Date, Notes.1, Notes.2",
		},
		{
			name: "misnamed column",
			data: strings.Replace(header, "Notes.2", "Notes 2", 1),
			code: errcode.CSVMissingColumnsError,
			text: "Notes.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iocsv.New(strings.NewReader(tt.data))
			require.Error(t, err)

			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Err.Error(), tt.text)
		})
	}
}

func TestRead_FieldCount(t *testing.T) {
	data := header +
		"Jane,Doe,2024-01-01,2025-01-01,VIP\n" +
		"Short,Row\n" +
		"Long,Row,,,,,,extra,cells\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)

	rec, line, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, line)
	assert.Equal(t, "VIP", rec[member.ColNotes])
	assert.Equal(t, "", rec[member.ColNotes1])
	assert.Equal(t, "", rec[member.ColNotes2])

	rec, line, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, 3, line)
	assert.Equal(t, "Row", rec[member.ColLastName])
	assert.Equal(t, "", rec[member.ColRenewal])
	assert.Len(t, rec, len(member.Columns))

	rec, _, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Long", rec[member.ColFirstName])
	assert.Len(t, rec, len(member.Columns))

	_, _, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNew_EmptyFile(t *testing.T) {
	r, err := iocsv.New(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, r.Header())

	_, _, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRead_FixesInvalidUTF8(t *testing.T) {
	data := header + "Jos\xe9,Doe,,,,,\n"

	r, err := iocsv.New(strings.NewReader(data))
	require.NoError(t, err)

	rec, _, err := r.Read()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec[member.ColFirstName], "Jos"))
	assert.NotContains(t, rec[member.ColFirstName], "\xe9")
}
