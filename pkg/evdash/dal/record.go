package dal

import "strconv"

// Record defines one vehicle row from the population dataset.
// Fields hold the raw CSV values; numeric fields are coerced on demand
// and a value that fails to parse is simply reported as absent.
type Record struct {
	County              string `json:"county,omitempty"`
	Model               string `json:"model,omitempty"`
	City                string `json:"city,omitempty"`
	Make                string `json:"make,omitempty"`
	ModelYear           string `json:"model_year,omitempty"`
	ElectricVehicleType string `json:"electric_vehicle_type,omitempty"`
	ElectricRange       string `json:"electric_range,omitempty"`
	BaseMSRP            string `json:"base_msrp,omitempty"`
}

// Year parses the model year. ok is false for absent or malformed values.
func (r Record) Year() (int, bool) {
	y, err := strconv.Atoi(r.ModelYear)
	if err != nil {
		return 0, false
	}
	return y, true
}

// Range parses the electric range in miles.
func (r Record) Range() (float64, bool) {
	return parseNumber(r.ElectricRange)
}

// MSRP parses the base MSRP in dollars.
func (r Record) MSRP() (float64, bool) {
	return parseNumber(r.BaseMSRP)
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AllValues is the sentinel meaning "no constraint on this field".
const AllValues = "All"

// FilterCriteria defines the active user-selected constraints.
// Categorical fields use AllValues to disable the constraint; the year
// range is always applied.
type FilterCriteria struct {
	County  string `json:"county"`
	Model   string `json:"model"`
	City    string `json:"city"`
	YearMin int    `json:"year_min"`
	YearMax int    `json:"year_max"`
}

// NewFilterCriteria returns criteria that match every record with a
// parseable model year.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		County:  AllValues,
		Model:   AllValues,
		City:    AllValues,
		YearMin: 0,
		YearMax: 9999,
	}
}
