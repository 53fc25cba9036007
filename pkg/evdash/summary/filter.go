package summary

import "github.com/evdash/evdash/pkg/evdash/dal"

// Filter returns the records matching all criteria, preserving input
// order. Categorical constraints are skipped when set to dal.AllValues;
// the year constraint is always applied, so a record whose model year
// is absent or unparsable never passes.
func Filter(records []dal.Record, criteria dal.FilterCriteria) []dal.Record {
	filtered := make([]dal.Record, 0, len(records))
	for _, r := range records {
		if matches(r, criteria) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matches(r dal.Record, c dal.FilterCriteria) bool {
	if c.County != dal.AllValues && r.County != c.County {
		return false
	}
	if c.Model != dal.AllValues && r.Model != c.Model {
		return false
	}
	if c.City != dal.AllValues && r.City != c.City {
		return false
	}
	year, ok := r.Year()
	if !ok {
		return false
	}
	return year >= c.YearMin && year <= c.YearMax
}
