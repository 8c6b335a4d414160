package ioimport

import (
	"os"

	"github.com/fitengage/fitimport/internal/iofs"
	"github.com/fitengage/fitimport/pkg/member"
	"gopkg.in/yaml.v3"
)

// writeReport saves the summary of a run as YAML.
func writeReport(path string, sum *member.Summary) error {
	data, err := yaml.Marshal(sum)
	if err != nil {
		return ReportError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}
