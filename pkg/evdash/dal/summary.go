package dal

// CountEntry is one label/count pair in a grouped count.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupedCounts maps category labels to occurrence counts.
// Entries keep the first-seen order of the underlying records.
type GroupedCounts []CountEntry

// Get returns the count for a label.
func (g GroupedCounts) Get(key string) (int, bool) {
	for _, e := range g {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}

// Total sums all counts.
func (g GroupedCounts) Total() int {
	var total int
	for _, e := range g {
		total += e.Count
	}
	return total
}

// Max returns the largest count, 0 when empty.
func (g GroupedCounts) Max() int {
	var max int
	for _, e := range g {
		if e.Count > max {
			max = e.Count
		}
	}
	return max
}

// AverageEntry is one label/mean pair in a grouped average.
type AverageEntry struct {
	Key  string  `json:"key"`
	Mean float64 `json:"mean"`
}

// GroupedAverage maps group keys to the arithmetic mean of a numeric
// field. Keys with zero valid observations are excluded, never zeroed.
// Entries keep the first-seen order of the underlying records.
type GroupedAverage []AverageEntry

// Get returns the mean for a key.
func (g GroupedAverage) Get(key string) (float64, bool) {
	for _, e := range g {
		if e.Key == key {
			return e.Mean, true
		}
	}
	return 0, false
}

// Max returns the largest mean, 0 when empty.
func (g GroupedAverage) Max() float64 {
	var max float64
	for _, e := range g {
		if e.Mean > max {
			max = e.Mean
		}
	}
	return max
}

// CrossMetricMaxima holds the maxima across the other summaries.
type CrossMetricMaxima struct {
	MaxAvgRange  float64 `json:"maxAvgRange"`
	MaxAvgMSRP   float64 `json:"maxAvgMsrp"`
	MaxMakeCount int     `json:"maxMakeCount"`
}

// SummaryBundle is the complete set of summaries for one recomputation.
// A bundle is built fresh on every recomputation and replaced as a
// whole; consumers never observe a partial update.
type SummaryBundle struct {
	CountByMake            GroupedCounts     `json:"countByMake"`
	TypeDistribution       GroupedCounts     `json:"typeDistribution"`
	AvgRangeByYear         GroupedAverage    `json:"avgRangeByYear"`
	AvgMSRPByMake          GroupedAverage    `json:"avgMsrpByMake"`
	TypeDistributionRepeat GroupedCounts     `json:"typeDistributionRepeat"`
	CrossMetricMaxima      CrossMetricMaxima `json:"crossMetricMaxima"`
}
