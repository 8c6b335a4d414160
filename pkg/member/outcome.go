package member

// Status is the result of importing one row.
type Status int

const (
	Inserted Status = iota
	Skipped
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome describes what happened to one CSV row.
type Outcome struct {
	// Line is the CSV line the row starts on.
	Line int `yaml:"line"`

	// Name is the derived member name.
	Name string `yaml:"name"`

	Status Status `yaml:"-"`

	// Reason explains why a row was skipped.
	Reason string `yaml:"reason,omitempty"`
}

// Summary aggregates Outcomes of an import run.
type Summary struct {
	Inserted int       `yaml:"inserted"`
	Skipped  int       `yaml:"skipped"`
	Skips    []Outcome `yaml:"skips,omitempty"`
}

// Add counts an Outcome. Skipped outcomes are kept for reporting.
func (s *Summary) Add(o Outcome) {
	switch o.Status {
	case Inserted:
		s.Inserted++
	case Skipped:
		s.Skipped++
		s.Skips = append(s.Skips, o)
	}
}

// Total is the number of processed rows.
func (s *Summary) Total() int {
	return s.Inserted + s.Skipped
}
