package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TaxRate is either a numeric percentage or an exemption code such as "NP",
// "OO" or "ZW" that is printed verbatim.
type TaxRate struct {
	Percent float64
	Code    string
	numeric bool
}

// Percent returns a numeric tax rate
func Percent(p float64) TaxRate {
	return TaxRate{Percent: p, numeric: true}
}

// Code returns a passthrough tax code
func Code(code string) TaxRate {
	return TaxRate{Code: code}
}

// ParseTaxRate treats numeric strings as percentages and anything else as a code
func ParseTaxRate(s string) TaxRate {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if p, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64); err == nil {
		return Percent(p)
	}
	return Code(strings.TrimSpace(s))
}

// IsNumeric reports whether the rate is a percentage
func (r TaxRate) IsNumeric() bool {
	return r.numeric
}

// Key identifies the rate when grouping items by rate
func (r TaxRate) Key() string {
	if r.numeric {
		return strconv.FormatFloat(r.Percent, 'f', -1, 64)
	}
	return r.Code
}

func (r TaxRate) MarshalJSON() ([]byte, error) {
	if r.numeric {
		return json.Marshal(r.Percent)
	}
	return json.Marshal(r.Code)
}

func (r *TaxRate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ParseTaxRate(s)
		return nil
	}
	var p float64
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("tax rate must be a number or a string: %w", err)
	}
	*r = Percent(p)
	return nil
}
