package compare

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/rgehrsitz/imtgo/internal/domain"
)

// JSONFormatter renders a comparison as a JSON document with every amount
// as a fixed two-decimal string
type JSONFormatter struct {
	Pretty bool
}

type scenarioJSON struct {
	Name                 string              `json:"name"`
	Description          string              `json:"description,omitempty"`
	PropertyType         domain.PropertyType `json:"propertyType"`
	Location             domain.Location     `json:"location"`
	PropertyValue        string              `json:"propertyValue"`
	LoanAmount           string              `json:"loanAmount"`
	IMT                  string              `json:"imt"`
	AcquisitionStampDuty string              `json:"acquisitionStampDuty"`
	LoanStampDuty        string              `json:"loanStampDuty"`
	TotalTaxes           string              `json:"totalTaxes"`
	TotalCost            string              `json:"totalCost"`
	TaxDiffFromBase      string              `json:"taxDiffFromBase"`
	TaxPctFromBase       string              `json:"taxPctFromBase"`
}

type comparisonJSON struct {
	Base            scenarioJSON   `json:"base"`
	Alternatives    []scenarioJSON `json:"alternatives"`
	Recommendations []string       `json:"recommendations"`
}

func newScenarioJSON(r ComparisonResult) scenarioJSON {
	p := r.Purchase.Normalized()
	c := r.Costs
	return scenarioJSON{
		Name:                 r.ScenarioName,
		Description:          r.Description,
		PropertyType:         p.Type,
		Location:             p.Location,
		PropertyValue:        c.PropertyValue.StringFixed(2),
		LoanAmount:           c.LoanAmount.StringFixed(2),
		IMT:                  c.IMT.IMT.StringFixed(2),
		AcquisitionStampDuty: c.AcquisitionStampDuty.StringFixed(2),
		LoanStampDuty:        c.LoanStampDuty.StringFixed(2),
		TotalTaxes:           c.TotalTaxes.StringFixed(2),
		TotalCost:            c.TotalCost.StringFixed(2),
		TaxDiffFromBase:      r.TaxDiffFromBase.StringFixed(2),
		TaxPctFromBase:       r.TaxPctFromBase.StringFixed(2),
	}
}

// Format encodes the comparison. A set without a base scenario is an error.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil || compSet.BaseResult == nil {
		return "", errors.New("comparison has no base scenario")
	}

	doc := comparisonJSON{
		Base:            newScenarioJSON(*compSet.BaseResult),
		Alternatives:    make([]scenarioJSON, 0, len(compSet.AlternativeResults)),
		Recommendations: compSet.Recommendations,
	}
	for _, alt := range compSet.AlternativeResults {
		doc.Alternatives = append(doc.Alternatives, newScenarioJSON(alt))
	}
	if doc.Recommendations == nil {
		doc.Recommendations = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if jf.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
