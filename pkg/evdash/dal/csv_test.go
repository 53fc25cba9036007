package dal

import (
	"strings"
	"testing"
)

func TestParseRecords(t *testing.T) {
	data := `VIN (1-10),County,City,State,Model Year,Make,Model,Electric Vehicle Type,Electric Range,Base MSRP
5YJ3E1EB0K,King,Seattle,WA,2020,Tesla,Model 3,BEV,250,40000
1N4AZ0CP5D,King,Bellevue,WA,2018,Nissan,Leaf,BEV,150,
`

	records, err := ParseRecords(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, Got: %d", len(records))
	}

	first := Record{
		County:              "King",
		Model:               "Model 3",
		City:                "Seattle",
		Make:                "Tesla",
		ModelYear:           "2020",
		ElectricVehicleType: "BEV",
		ElectricRange:       "250",
		BaseMSRP:            "40000",
	}
	if records[0] != first {
		t.Errorf("Expected: %+v, Got: %+v", first, records[0])
	}
	if records[1].BaseMSRP != "" {
		t.Errorf("Expected empty MSRP, Got: %q", records[1].BaseMSRP)
	}
}

func TestParseRecordsShortRows(t *testing.T) {
	data := `County,City,Model Year,Make,Model,Electric Vehicle Type,Electric Range,Base MSRP
King,Seattle,2020
`

	records, err := ParseRecords(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// Columns past the row's end come back empty.
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, Got: %d", len(records))
	}
	if records[0].County != "King" || records[0].Make != "" {
		t.Errorf("Expected partial record, Got: %+v", records[0])
	}
}

func TestParseRecordsMissingColumns(t *testing.T) {
	data := `Make,Model Year
Tesla,2020
`

	records, err := ParseRecords(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, Got: %d", len(records))
	}
	if records[0].Make != "Tesla" || records[0].County != "" || records[0].ElectricRange != "" {
		t.Errorf("Expected absent columns to be empty, Got: %+v", records[0])
	}
}

func TestParseRecordsEmptyInput(t *testing.T) {
	if _, err := ParseRecords(strings.NewReader("")); err == nil {
		t.Error("Expected error for input without headers")
	}
}
