// Package export renders a user's habit month as a spreadsheet: one row per
// habit, one column per day, boolean check-ins as check marks and numeric
// check-ins as raw values. Absent days stay empty so a downloaded sheet keeps
// the no-data/zero distinction visible.
package export

import (
	"fmt"
	"time"

	"streaky/internal/db/models"
	"streaky/internal/stats"

	"github.com/xuri/excelize/v2"
)

const checkMark = "✔"

// MonthlyWorkbook builds an xlsx workbook for one calendar month.
func MonthlyWorkbook(habits []models.HabitHistory, year int, month time.Month) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("%s %d", month.String(), year)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	days := stats.DaysInMonth(year, month)

	header := []interface{}{"Habit", "Type", "Target", "Unit"}
	dateKeys := make([]string, 0, days)
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		header = append(header, d.Format("Jan 2"))
		dateKeys = append(dateKeys, stats.DateKey(d))
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, hh := range habits {
		h := hh.Habit
		row := []interface{}{h.Text, string(h.Kind)}
		if h.Kind == models.KindNumeric {
			row = append(row, h.Target, h.Unit)
		} else {
			row = append(row, "-", "-")
		}
		for _, key := range dateKeys {
			value, recorded := hh.On(key).Value()
			switch {
			case !recorded:
				row = append(row, "")
			case h.Kind == models.KindBoolean:
				if value != 0 {
					row = append(row, checkMark)
				} else {
					row = append(row, "")
				}
			default:
				row = append(row, value)
			}
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("error writing row %d: %w", row, err)
	}
	return nil
}
