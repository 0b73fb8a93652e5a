package output

import (
	"encoding/json"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// JSONFormatter formats batch reports as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
