package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// Formatter renders a batch report into bytes
type Formatter interface {
	Name() string
	Format(report *domain.BatchReport) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *domain.BatchReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.BatchReport) ([]byte, error) {
	return f.F(report)
}

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"csv":     CSVFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"html":    HTMLFormatter{},
	"summary": FormatterFunc{ID: "summary", F: formatSummary},
}

var aliases = map[string]string{
	"table": "console",
	"text":  "console",
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted alternative names
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileExtension returns the extension used when saving a formatter's output
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "console", "summary":
		return "txt"
	default:
		return f.Name()
	}
}

// formatSummary renders only the report totals on a single line
func formatSummary(report *domain.BatchReport) ([]byte, error) {
	t := report.Totals
	return []byte(fmt.Sprintf("%d properties, value %s, IMT %s, stamp duty %s, total taxes %s\n",
		len(report.Rows),
		FormatCurrency(t.PropertyValue),
		FormatCurrency(t.IMT),
		FormatCurrency(t.StampDuty),
		FormatCurrency(t.TotalTaxes))), nil
}

// WriteFormatted formats the report and writes it to a timestamped file in
// the working directory, returning the file name
func WriteFormatted(f Formatter, report *domain.BatchReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("imt_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
