package dal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Dataset header names. The upstream CSV maps 1:1 to Record fields and
// the match is case-sensitive.
const (
	headerCounty        = "County"
	headerModel         = "Model"
	headerCity          = "City"
	headerMake          = "Make"
	headerModelYear     = "Model Year"
	headerVehicleType   = "Electric Vehicle Type"
	headerElectricRange = "Electric Range"
	headerBaseMSRP      = "Base MSRP"
)

// ParseRecords reads the vehicle population CSV into records.
// Columns outside the known header set are ignored; rows that fail to
// parse are skipped rather than surfaced as errors. Missing columns
// yield empty fields, which downstream coercion treats as absent.
func ParseRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[h] = i
	}

	field := func(row []string, header string) string {
		i, ok := cols[header]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		records = append(records, Record{
			County:              field(row, headerCounty),
			Model:               field(row, headerModel),
			City:                field(row, headerCity),
			Make:                field(row, headerMake),
			ModelYear:           field(row, headerModelYear),
			ElectricVehicleType: field(row, headerVehicleType),
			ElectricRange:       field(row, headerElectricRange),
			BaseMSRP:            field(row, headerBaseMSRP),
		})
	}

	return records, nil
}

// LoadFile reads a dataset CSV from disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return ParseRecords(f)
}
