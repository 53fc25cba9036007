package summary

import "github.com/evdash/evdash/pkg/evdash/dal"

// Each aggregator is a pure function over the already-filtered record
// set. Aggregators never re-filter and never fail; edge cases degrade
// to empty summaries.

// CountByMake counts filtered vehicles per make.
func CountByMake(records []dal.Record) dal.GroupedCounts {
	return countBy(records, func(r dal.Record) (string, bool) {
		return r.Make, r.Make != ""
	})
}

// TypeDistribution counts filtered vehicles per electric vehicle type.
func TypeDistribution(records []dal.Record) dal.GroupedCounts {
	return countBy(records, func(r dal.Record) (string, bool) {
		return r.ElectricVehicleType, r.ElectricVehicleType != ""
	})
}

// AvgRangeByYear computes the mean electric range per model year.
// Years with no parseable range values are excluded.
func AvgRangeByYear(records []dal.Record) dal.GroupedAverage {
	return averageBy(records, func(r dal.Record) (string, bool) {
		_, ok := r.Year()
		return r.ModelYear, ok
	}, dal.Record.Range)
}

// AvgMSRPByMake computes the mean base MSRP per make.
// Makes with no parseable MSRP values are excluded.
func AvgMSRPByMake(records []dal.Record) dal.GroupedAverage {
	return averageBy(records, func(r dal.Record) (string, bool) {
		return r.Make, r.Make != ""
	}, dal.Record.MSRP)
}

// Maxima computes the cross-metric maxima over the other summaries,
// zero when a summary is empty.
func Maxima(avgRange, avgMSRP dal.GroupedAverage, counts dal.GroupedCounts) dal.CrossMetricMaxima {
	return dal.CrossMetricMaxima{
		MaxAvgRange:  avgRange.Max(),
		MaxAvgMSRP:   avgMSRP.Max(),
		MaxMakeCount: counts.Max(),
	}
}

func countBy(records []dal.Record, keyFn func(dal.Record) (string, bool)) dal.GroupedCounts {
	grouped := GroupBy(records, keyFn, func(dal.Record) (int, bool) { return 1, true })
	counts := make(dal.GroupedCounts, 0, grouped.Len())
	for _, key := range grouped.Keys() {
		counts = append(counts, dal.CountEntry{Key: key, Count: len(grouped.Values(key))})
	}
	return counts
}

func averageBy(
	records []dal.Record,
	keyFn func(dal.Record) (string, bool),
	valueFn func(dal.Record) (float64, bool),
) dal.GroupedAverage {
	grouped := GroupBy(records, keyFn, valueFn)
	averages := make(dal.GroupedAverage, 0, grouped.Len())
	for _, key := range grouped.Keys() {
		values := grouped.Values(key)
		if len(values) == 0 {
			continue
		}
		// Sum in input order so repeated runs are bit-identical.
		var sum float64
		for _, v := range values {
			sum += v
		}
		averages = append(averages, dal.AverageEntry{Key: key, Mean: sum / float64(len(values))})
	}
	return averages
}
