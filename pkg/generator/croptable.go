package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Crop families the heuristic distinguishes.
const (
	familyRice    = "rice"
	familyWheat   = "wheat"
	familyGeneric = "generic"
)

// Built-in days-to-maturity per crop family, used when the caller supplies no
// harvest date.
var defaultMaturity = map[string]int{
	familyRice:    120,
	familyWheat:   120,
	"maize":       100,
	"potato":      95,
	familyGeneric: 110,
}

// cropFamily buckets a crop into one of the known schedule families.
func cropFamily(cropType, cropName string) string {
	s := strings.ToLower(cropType + " " + cropName)
	switch {
	case strings.Contains(s, "rice"), strings.Contains(s, "paddy"), strings.Contains(s, "ধান"):
		return familyRice
	case strings.Contains(s, "wheat"), strings.Contains(s, "গম"):
		return familyWheat
	default:
		return familyGeneric
	}
}

// LoadMaturityOverrides reads crop,maturity_days rows from the first sheet of
// a workbook. Rows with an unknown shape are skipped; the built-in table
// covers anything missing.
func LoadMaturityOverrides(path string) (map[string]int, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("crop table %s: no sheets", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	out := map[string]int{}
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue // header or short row
		}
		days, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil || days <= 0 {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(row[0]))] = days
	}
	return out, nil
}
