package dal

import "testing"

func TestRecordNumericCoercion(t *testing.T) {

	tests := []struct {
		name     string
		record   Record
		wantYear bool
		wantRng  bool
		wantMSRP bool
	}{
		{
			name:     "AllValid",
			record:   Record{ModelYear: "2020", ElectricRange: "250", BaseMSRP: "39990.50"},
			wantYear: true,
			wantRng:  true,
			wantMSRP: true,
		},
		{
			name:   "AllEmpty",
			record: Record{},
		},
		{
			name:   "Malformed",
			record: Record{ModelYear: "20twenty", ElectricRange: "far", BaseMSRP: "$40k"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := tc.record.Year(); ok != tc.wantYear {
				t.Errorf("Year() ok = %v, expected %v", ok, tc.wantYear)
			}
			if _, ok := tc.record.Range(); ok != tc.wantRng {
				t.Errorf("Range() ok = %v, expected %v", ok, tc.wantRng)
			}
			if _, ok := tc.record.MSRP(); ok != tc.wantMSRP {
				t.Errorf("MSRP() ok = %v, expected %v", ok, tc.wantMSRP)
			}
		})
	}
}

func TestGroupedCountsHelpers(t *testing.T) {
	counts := GroupedCounts{
		{Key: "Tesla", Count: 3},
		{Key: "Nissan", Count: 5},
	}

	if got := counts.Total(); got != 8 {
		t.Errorf("Total() = %d, expected 8", got)
	}
	if got := counts.Max(); got != 5 {
		t.Errorf("Max() = %d, expected 5", got)
	}
	if got, ok := counts.Get("Tesla"); !ok || got != 3 {
		t.Errorf("Get(Tesla) = %d, %v", got, ok)
	}
	if _, ok := counts.Get("Ford"); ok {
		t.Error("Get(Ford) reported a missing key as present")
	}

	var empty GroupedCounts
	if empty.Max() != 0 || empty.Total() != 0 {
		t.Error("empty counts must report zero total and max")
	}
}

func TestGroupedAverageHelpers(t *testing.T) {
	averages := GroupedAverage{
		{Key: "2020", Mean: 275},
		{Key: "2018", Mean: 150},
	}

	if got := averages.Max(); got != 275 {
		t.Errorf("Max() = %v, expected 275", got)
	}
	if got, ok := averages.Get("2018"); !ok || got != 150 {
		t.Errorf("Get(2018) = %v, %v", got, ok)
	}

	var empty GroupedAverage
	if empty.Max() != 0 {
		t.Error("empty averages must report zero max")
	}
}
