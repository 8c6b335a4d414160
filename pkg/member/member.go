// Package member describes gym members as they arrive from a CSV export
// and as they are stored in the members table.
//
// The package has no I/O. It converts an input Record into a Member row,
// filling missing values with "N/A" placeholders.
package member

import (
	"strings"
)

// Required CSV columns.
const (
	ColFirstName  = "First Name"
	ColLastName   = "Last Name"
	ColRenewal    = "Membership Renewal"
	ColExpiryDate = "Membership Expiry Date"
	ColNotes      = "Notes"
	ColNotes1     = "Notes.1"
	ColNotes2     = "Notes.2"
)

const (
	// Placeholder replaces values that are missing in the export.
	Placeholder = "N/A"

	// NotesSeparator joins non-empty notes columns.
	NotesSeparator = " | "

	// DefaultEmailDomain is used for generated placeholder emails.
	DefaultEmailDomain = "fitengage.com"
)

// Columns lists the CSV header names a member export must have.
var Columns = []string{
	ColFirstName,
	ColLastName,
	ColRenewal,
	ColExpiryDate,
	ColNotes,
	ColNotes1,
	ColNotes2,
}

// Record is one CSV data row keyed by header name.
type Record map[string]string

// Member is a row of the members table.
type Member struct {
	Name  string
	Email string
	Phone string

	// MembershipTypeID is nil unless a default type is configured.
	MembershipTypeID *int64

	MembershipStart string
	MembershipEnd   string
	Notes           string
}

// Values returns the insert arguments in the order of the members
// table columns: name, email, phone, membership_type_id,
// membership_start, membership_end, notes.
func (m Member) Values() []any {
	var typeID any
	if m.MembershipTypeID != nil {
		typeID = *m.MembershipTypeID
	}
	return []any{
		m.Name,
		m.Email,
		m.Phone,
		typeID,
		m.MembershipStart,
		m.MembershipEnd,
		m.Notes,
	}
}

// Builder converts Records to Members.
type Builder struct {
	emailDomain      string
	membershipTypeID *int64
}

// NewBuilder creates a Builder. An empty emailDomain falls back to
// DefaultEmailDomain. A nil membershipTypeID keeps the column NULL.
func NewBuilder(emailDomain string, membershipTypeID *int64) Builder {
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	return Builder{
		emailDomain:      emailDomain,
		membershipTypeID: membershipTypeID,
	}
}

// Build derives a Member from a Record.
func (b Builder) Build(rec Record) Member {
	first := rec[ColFirstName]
	last := rec[ColLastName]

	res := Member{
		Name:             Name(first, last),
		Email:            b.Email(first, last),
		Phone:            Placeholder,
		MembershipTypeID: b.membershipTypeID,
		MembershipStart:  orPlaceholder(rec[ColRenewal]),
		MembershipEnd:    orPlaceholder(rec[ColExpiryDate]),
		Notes:            Notes(rec[ColNotes], rec[ColNotes1], rec[ColNotes2]),
	}
	return res
}

// Name joins trimmed first and last names with one space and trims the
// result.
func Name(first, last string) string {
	res := strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	return strings.TrimSpace(res)
}

// Email returns a generated placeholder address when either name is
// empty, and Placeholder when both are present.
//
// The condition looks inverted. It is kept so that new rows match
// members imported earlier.
func (b Builder) Email(first, last string) string {
	if first == "" || last == "" {
		return "na-" + strings.ToLower(first) + "_" +
			strings.ToLower(last) + "@" + b.emailDomain
	}
	return Placeholder
}

// Notes joins non-empty notes with NotesSeparator.
func Notes(notes ...string) string {
	var parts []string
	for _, v := range notes {
		if v != "" {
			parts = append(parts, v)
		}
	}
	res := strings.TrimSpace(strings.Join(parts, NotesSeparator))
	if res == "" {
		return Placeholder
	}
	return res
}

// orPlaceholder trims a present value. Only a missing (empty) value
// becomes Placeholder, a whitespace-only value trims to "".
func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return strings.TrimSpace(s)
}
