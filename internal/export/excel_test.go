package export

import (
	"testing"
	"time"

	"streaky/internal/db/models"
)

func TestMonthlyWorkbook(t *testing.T) {
	habits := []models.HabitHistory{
		{
			Habit: models.Habit{Text: "Meditate", Kind: models.KindBoolean, Target: 1},
			History: map[string]float64{
				"2024-02-01": 1,
			},
		},
		{
			Habit: models.Habit{Text: "Drink Water", Kind: models.KindNumeric, Unit: "glasses", Target: 8},
			History: map[string]float64{
				"2024-02-02": 5,
			},
		},
	}

	f, err := MonthlyWorkbook(habits, 2024, time.February)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	sheet := "February 2024"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		t.Fatalf("sheet %q not found (idx=%d, err=%v)", sheet, idx, err)
	}

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("get cell %s: %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "Habit" {
		t.Errorf("A1 = %q, want Habit", got)
	}
	// First day column is E (after Habit/Type/Target/Unit).
	if got := get("E1"); got != "Feb 1" {
		t.Errorf("E1 = %q, want Feb 1", got)
	}

	// Boolean habit: checked on Feb 1, empty on Feb 2.
	if got := get("E2"); got != "✔" {
		t.Errorf("E2 = %q, want check mark", got)
	}
	if got := get("F2"); got != "" {
		t.Errorf("F2 = %q, want empty (no data)", got)
	}

	// Numeric habit: raw value on Feb 2, target/unit columns filled.
	if got := get("F3"); got != "5" {
		t.Errorf("F3 = %q, want 5", got)
	}
	if got := get("C3"); got != "8" {
		t.Errorf("C3 = %q, want 8", got)
	}
	if got := get("D3"); got != "glasses" {
		t.Errorf("D3 = %q, want glasses", got)
	}

	// Boolean habits have no meaningful target/unit.
	if got := get("C2"); got != "-" {
		t.Errorf("C2 = %q, want -", got)
	}

	// Leap February: last day column exists, one past it does not.
	// 4 leading columns + 29 days = column 33 ("AG").
	if got := get("AG1"); got != "Feb 29" {
		t.Errorf("AG1 = %q, want Feb 29", got)
	}
	if got := get("AH1"); got != "" {
		t.Errorf("AH1 = %q, want empty", got)
	}
}
