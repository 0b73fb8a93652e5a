package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// HTMLFormatter produces a standalone HTML page for a batch report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	data := struct {
		*domain.BatchReport
		KeyAssumptions []string
	}{report, assumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
